// Package docs registra a especificação OpenAPI do cadastro no swag.
// A fonte única é swagger.json (mantido à mão e servido em /docs); aqui
// só embutimos o arquivo para que swag.ReadDoc funcione com o mesmo
// conteúdo, sem duplicação.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var doc string

// SwaggerInfo expõe os metadados da especificação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cadastro de Licenças Ambientais",
	Description:      "API de cadastro de empresas e suas licenças ambientais.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  doc,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

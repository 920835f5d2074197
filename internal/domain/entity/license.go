package entity

import "time"

// License representa uma licença ambiental emitida para uma empresa.
// O número é único globalmente; toda licença pertence a exatamente uma empresa.
type License struct {
	ID             string
	EmpresaID      string
	Numero         string
	OrgaoAmbiental string
	Emissao        time.Time
	Validade       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

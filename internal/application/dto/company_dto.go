package dto

import "time"

// CreateCompanyRequest entrada para criar uma empresa.
// Os nomes de campo seguem o contrato original do cadastro (camelCase).
type CreateCompanyRequest struct {
	RazaoSocial string `json:"razaoSocial"`
	CNPJ        string `json:"cnpj"`
	CEP         string `json:"cep"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Bairro      string `json:"bairro"`
	Complemento string `json:"complemento"`
}

// UpdateCompanyRequest entrada para atualizar uma empresa (registro completo,
// todos os obrigatórios são revalidados).
type UpdateCompanyRequest struct {
	RazaoSocial string `json:"razaoSocial"`
	CNPJ        string `json:"cnpj"`
	CEP         string `json:"cep"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Bairro      string `json:"bairro"`
	Complemento string `json:"complemento"`
}

// CompanyResponse saída de uma empresa. Complemento é null quando ausente;
// licencas vem preenchido apenas nas rotas que fazem o join (null nas demais).
type CompanyResponse struct {
	ID          string            `json:"id"`
	RazaoSocial string            `json:"razaoSocial"`
	CNPJ        string            `json:"cnpj"`
	CEP         string            `json:"cep"`
	Cidade      string            `json:"cidade"`
	Estado      string            `json:"estado"`
	Bairro      string            `json:"bairro"`
	Complemento *string           `json:"complemento"`
	Licencas    []LicenseResponse `json:"licencas"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

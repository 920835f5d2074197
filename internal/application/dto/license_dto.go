package dto

import "time"

// CreateLicenseRequest entrada para criar uma licença ambiental.
// Datas chegam como string ISO-8601 (RFC 3339 ou AAAA-MM-DD).
type CreateLicenseRequest struct {
	EmpresaID      string `json:"empresaId"`
	Numero         string `json:"numero"`
	OrgaoAmbiental string `json:"orgaoAmbiental"`
	Emissao        string `json:"emissao"`
	Validade       string `json:"validade"`
}

// UpdateLicenseRequest entrada para atualizar uma licença.
// O vínculo com a empresa é imutável após a criação.
type UpdateLicenseRequest struct {
	Numero         string `json:"numero"`
	OrgaoAmbiental string `json:"orgaoAmbiental"`
	Emissao        string `json:"emissao"`
	Validade       string `json:"validade"`
}

// LicenseResponse saída de uma licença.
type LicenseResponse struct {
	ID             string    `json:"id"`
	EmpresaID      string    `json:"empresaId"`
	Numero         string    `json:"numero"`
	OrgaoAmbiental string    `json:"orgaoAmbiental"`
	Emissao        time.Time `json:"emissao"`
	Validade       time.Time `json:"validade"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

package entity

import "time"

// Company representa uma empresa cadastrada no sistema de licenciamento ambiental.
// O CNPJ é único globalmente e fica armazenado no formato NN.NNN.NNN/NNNN-NN.
type Company struct {
	ID          string
	RazaoSocial string
	CNPJ        string
	CEP         string
	Cidade      string
	Estado      string
	Bairro      string
	Complemento *string // nil quando vazio ou ausente
	Licencas    []License
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

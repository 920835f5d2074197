package domain

import "errors"

// Erros de domínio (sem dependências externas). As mensagens seguem o
// contrato da API e são devolvidas diretamente ao cliente.
var (
	ErrNotFound               = errors.New("recurso não encontrado")
	ErrCompanyNotFound        = errors.New("empresa não encontrada")
	ErrLicenseNotFound        = errors.New("licença não encontrada")
	ErrMissingFields          = errors.New("preencha todos os campos obrigatórios")
	ErrInvalidCNPJ            = errors.New("CNPJ não é válido")
	ErrDuplicateCNPJ          = errors.New("CNPJ já existe")
	ErrDuplicateLicenseNumber = errors.New("número da licença já existe")
	ErrInvalidDate            = errors.New("data inválida")
	ErrInvalidDateRange       = errors.New("validade deve ser igual ou posterior à emissão")
)

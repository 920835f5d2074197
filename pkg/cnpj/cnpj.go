package cnpj

import (
	"regexp"
	"unicode"
)

// formato exigido pelo cadastro: NN.NNN.NNN/NNNN-NN (máscara completa).
var cnpjPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// IsValidFormat informa se o CNPJ está na máscara NN.NNN.NNN/NNNN-NN.
// Não calcula dígitos verificadores; o cadastro valida apenas o formato.
func IsValidFormat(cnpj string) bool {
	return cnpjPattern.MatchString(cnpj)
}

// Digits extrai somente os dígitos do CNPJ, útil para comparações e logs.
func Digits(cnpj string) string {
	out := make([]rune, 0, len(cnpj))
	for _, r := range cnpj {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

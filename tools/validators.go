package tools

import "regexp"

var cpfPattern = regexp.MustCompile(`^[0-9]{11}$`)

// IsCPFValid aceita apenas 11 dígitos numéricos (sem pontuação).
func IsCPFValid(cpf string) bool {
	return cpfPattern.MatchString(cpf)
}

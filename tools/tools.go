package tools

import (
	"crypto/sha512"
	"encoding/hex"
)

// EncryptTextSHA512 gera o hash usado para indexar tokens de sessão no DB.
// Senhas NÃO passam por aqui (usam bcrypt).
func EncryptTextSHA512(text string) string {
	sum := sha512.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

package controllers

import (
	"fmt"
	"strconv"
	"time"

	"folha/config"
	"folha/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var conf config.Configuration

// SetConfigurations injeta a configuração de segurança (segredo e TTL
// da sessão). O router chama isto no setup das rotas.
func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// sessionClaims são os claims do token de sessão emitido pelo Login.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func getJWTSecret() string {
	if conf.Security.JwtSecret != "" {
		return conf.Security.JwtSecret
	}
	// mesmo default do config.json, para dev sem configuração
	return "CHANGE_ME"
}

func sessionTTL() time.Duration {
	minutes := conf.Security.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 24 * 60
	}
	return time.Duration(minutes) * time.Minute
}

func signSessionToken(secret string, user models.User, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: user.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseSessionToken valida assinatura e expiração e devolve o id do usuário.
func parseSessionToken(secret, token string) (int64, bool) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, false
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

package controllers

import (
	"net/http"
	"strings"
	"time"

	dbpkg "folha/db"
	"folha/models"
	"folha/tools"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"
const ctxSessaoKey = "auth_sessao"

// AuthRequired valida o Bearer token, confere a sessão persistida
// (logout revoga) e carrega usuário e sessão no contexto.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(strings.ToLower(h), "bearer ") {
			RespondError(c, "login necessário", http.StatusUnauthorized)
			c.Abort()
			return
		}
		token := strings.TrimSpace(h[len("Bearer "):])

		userID, ok := parseSessionToken(getJWTSecret(), token)
		if !ok {
			RespondError(c, "sessão inválida", http.StatusUnauthorized)
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
			c.Abort()
			return
		}

		var sessao models.Sessao
		if err := db.Where("token_hash = ?", tools.EncryptTextSHA512(token)).First(&sessao).Error; err != nil {
			RespondError(c, "sessão inválida", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if sessao.IsRevoked() || sessao.IsExpired(time.Now()) {
			RespondError(c, "sessão expirada", http.StatusUnauthorized)
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			RespondError(c, "usuário não encontrado", http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxSessaoKey, sessao)
		c.Next()
	}
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// GetSessao returns the session loaded by AuthRequired.
func GetSessao(c *gin.Context) (models.Sessao, bool) {
	v, ok := c.Get(ctxSessaoKey)
	if !ok {
		return models.Sessao{}, false
	}
	sessao, ok := v.(models.Sessao)
	return sessao, ok
}

package controllers

import (
	"net/http"
	"time"

	dbpkg "folha/db"
	"folha/models"
	"folha/tools"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

type RegisterRequest struct {
	Email           string `json:"email" form:"email"`
	Name            string `json:"name" form:"name"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
}

// GET /login
// O formulário em si é renderizado pelo front; aqui só confirmamos a rota.
func LoginForm(c *gin.Context) {
	RespondSuccess(c, gin.H{"status": "ok"})
}

// POST /login
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		RespondError(c, "Email inexistente!", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		RespondError(c, "Senha incorreta!", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	ttl := sessionTTL()

	token, err := signSessionToken(getJWTSecret(), user, now, ttl)
	if err != nil {
		RespondError(c, "erro ao assinar token", http.StatusInternalServerError)
		return
	}

	expiresAt := now.Add(ttl)
	sessao := models.Sessao{
		UserID:    user.ID,
		TokenHash: tools.EncryptTextSHA512(token),
		ExpiresAt: &expiresAt,
	}
	if err := db.Create(&sessao).Error; err != nil {
		RespondError(c, "erro ao criar sessão", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, LoginResponse{Message: "Logado com sucesso!", Token: token, User: user})
}

// GET /logout
// Revoga a sessão do token apresentado. A rota exige login, então a
// sessão sempre está no contexto aqui.
func Logout(c *gin.Context) {
	sessao, ok := GetSessao(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	if err := db.Model(&models.Sessao{}).Where("id = ?", sessao.ID).Update("revoked_at", &now).Error; err != nil {
		RespondError(c, "erro ao encerrar sessão", http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, gin.H{"message": "Sessão encerrada."})
}

// GET /register
func RegisterForm(c *gin.Context) {
	RespondSuccess(c, gin.H{"status": "ok"})
}

// POST /register
// As regras são avaliadas nesta ordem: email já cadastrado, tamanho do
// email, tamanho do nome, confirmação de senha, tamanho da senha.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		RespondError(c, "Email já cadastrado!", http.StatusBadRequest)
		return
	}
	if len(req.Email) <= 4 {
		RespondError(c, "Email deve ser maior que 4 caracteres.", http.StatusBadRequest)
		return
	}
	if len(req.Name) <= 2 {
		RespondError(c, "Nome deve ser maior que 2 caracteres.", http.StatusBadRequest)
		return
	}
	if req.Password != req.PasswordConfirm {
		RespondError(c, "Senhas devem ser iguais.", http.StatusBadRequest)
		return
	}
	if len(req.Password) <= 7 {
		RespondError(c, "A senha deve conter mais de 7 caracteres.", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, "erro ao gerar hash da senha", http.StatusInternalServerError)
		return
	}

	user := models.User{Name: req.Name, Email: req.Email, Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			RespondError(c, "Email já cadastrado!", http.StatusBadRequest)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Conta criada!", "user": user})
}

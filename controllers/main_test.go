package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"folha/config"
	dbpkg "folha/db"
	"folha/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testEmail     = "ana@example.com"
	testName      = "Ana"
	testPassword  = "senha12345"
	testJWTSecret = "segredo-de-teste"
)

// setupApp monta o router completo sobre um sqlite em memória.
func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// uma única conexão para o :memory: não se fragmentar em DBs distintos
	database.DB().SetMaxOpenConns(1)
	database.LogMode(false)
	require.NoError(t, dbpkg.Migrate(database))
	t.Cleanup(func() { database.Close() })

	cfg := config.Configuration{}
	cfg.Security.JwtSecret = testJWTSecret
	cfg.Security.SessionTTLMinutes = 60

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)
	return r
}

// doForm lança uma requisição com corpo de formulário e token opcional.
func doForm(t *testing.T, r *gin.Engine, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

// register cria a conta padrão de teste.
func register(t *testing.T, r *gin.Engine) {
	t.Helper()
	w := doForm(t, r, http.MethodPost, "/register", "", url.Values{
		"email":            {testEmail},
		"name":             {testName},
		"password":         {testPassword},
		"password_confirm": {testPassword},
	})
	require.Equal(t, http.StatusOK, w.Code, "registro deve suceder: %s", w.Body.String())
}

// login devolve um token de sessão válido.
func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	register(t, r)
	w := doForm(t, r, http.MethodPost, "/login", "", url.Values{
		"email":    {testEmail},
		"password": {testPassword},
	})
	require.Equal(t, http.StatusOK, w.Code, "login deve suceder: %s", w.Body.String())
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createProfissao cadastra uma profissão e devolve o id.
func createProfissao(t *testing.T, r *gin.Engine, token, nome, status string) int64 {
	t.Helper()
	w := doForm(t, r, http.MethodPost, "/cadastrar/profissao", token, url.Values{
		"nome":   {nome},
		"status": {status},
	})
	require.Equal(t, http.StatusOK, w.Code, "profissão deve ser criada: %s", w.Body.String())
	body := decodeBody(t, w)
	profissao, ok := body["profissao"].(map[string]any)
	require.True(t, ok)
	return int64(profissao["id"].(float64))
}

// createPessoa cadastra uma pessoa e devolve o id.
func createPessoa(t *testing.T, r *gin.Engine, token, nome, cpf string, profissaoID int64, endereco string) int64 {
	t.Helper()
	w := doForm(t, r, http.MethodPost, "/cadastrar/pessoa", token, url.Values{
		"nome":         {nome},
		"cpf":          {cpf},
		"profissao_id": {formatID(profissaoID)},
		"endereco":     {endereco},
	})
	require.Equal(t, http.StatusOK, w.Code, "pessoa deve ser criada: %s", w.Body.String())
	body := decodeBody(t, w)
	pessoa, ok := body["pessoa"].(map[string]any)
	require.True(t, ok)
	return int64(pessoa["id"].(float64))
}

// createFolha cadastra uma folha de pagamento e devolve o id.
func createFolha(t *testing.T, r *gin.Engine, token string, pessoaID int64, salario, descontos, data string) int64 {
	t.Helper()
	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token, url.Values{
		"pessoa_id":      {formatID(pessoaID)},
		"salario":        {salario},
		"comissao":       {"0"},
		"descontos":      {descontos},
		"gratificacoes":  {"0"},
		"data_pagamento": {data},
	})
	require.Equal(t, http.StatusOK, w.Code, "folha deve ser criada: %s", w.Body.String())
	body := decodeBody(t, w)
	folha, ok := body["folha"].(map[string]any)
	require.True(t, ok)
	return int64(folha["id"].(float64))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

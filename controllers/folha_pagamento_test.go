package controllers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func folhaForm(pessoaID int64, salario, comissao, descontos, gratificacoes, data string) url.Values {
	return url.Values{
		"pessoa_id":      {formatID(pessoaID)},
		"salario":        {salario},
		"comissao":       {comissao},
		"descontos":      {descontos},
		"gratificacoes":  {gratificacoes},
		"data_pagamento": {data},
	}
}

// Cenário completo: profissão → pessoa → folha → exclusões na ordem certa.
func TestFolhaPagamento_CicloCompleto(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)

	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token,
		folhaForm(pessoaID, "5000", "0", "100", "0", "2024-03-01"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	folha := body["folha"].(map[string]any)
	folhaID := int64(folha["id"].(float64))
	assert.Equal(t, 5000.0, folha["salario"])
	assert.True(t, strings.HasPrefix(folha["data_pagamento"].(string), "2024-03-01"))

	// pessoa com folha associada não pode ser excluída
	w = doForm(t, r, http.MethodPost, "/deletar/pessoa/"+formatID(pessoaID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// exclui a folha (terminal, sem guarda)
	w = doForm(t, r, http.MethodPost, "/deletar/folha-pagamento/"+formatID(folhaID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Folha de pagamento deletada com sucesso!")

	// agora a pessoa sai
	w = doForm(t, r, http.MethodPost, "/deletar/pessoa/"+formatID(pessoaID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateFolha_DataForaDoFormato_NadaPersistido(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token,
		folhaForm(pessoaID, "5000", "0", "100", "0", "03-01-2024"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Data de pagamento inválida. Use o formato YYYY-MM-DD.")

	w = doForm(t, r, http.MethodGet, "/listar/folha-pagamento", token, nil)
	body := decodeBody(t, w)
	assert.Empty(t, body["folhas"])
}

func TestCreateFolha_PessoaInvalida(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)

	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token,
		folhaForm(999, "5000", "0", "100", "0", "2024-03-01"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Pessoa inválida.")
}

func TestCreateFolha_CamposObrigatorios(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token,
		folhaForm(pessoaID, "", "0", "100", "0", "2024-03-01"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Os campos pessoa, salário, descontos e data de pagamento são obrigatórios.")
}

func TestCreateFolha_ValoresNaoNumericos(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token,
		folhaForm(pessoaID, "cinco mil", "0", "100", "0", "2024-03-01"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Salário, comissão, descontos e gratificações devem ser números válidos.")
}

func TestCreateFolha_ComissaoEGratificacoesVazias_AssumemZero(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodPost, "/cadastrar/folha-pagamento", token,
		folhaForm(pessoaID, "5000", "", "100", "", "2024-03-01"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	folha := body["folha"].(map[string]any)
	assert.Equal(t, 0.0, folha["comissao"])
	assert.Equal(t, 0.0, folha["gratificacoes"])
}

func TestGetFolhas_PessoaResolvida(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")
	createFolha(t, r, token, pessoaID, "5000", "100", "2024-03-01")

	w := doForm(t, r, http.MethodGet, "/listar/folha-pagamento", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	folhas, ok := body["folhas"].([]any)
	require.True(t, ok)
	require.Len(t, folhas, 1)

	folha := folhas[0].(map[string]any)
	pessoa, ok := folha["pessoa"].(map[string]any)
	require.True(t, ok, "pessoa deve vir resolvida na listagem")
	assert.Equal(t, "Ana", pessoa["nome"])
}

func TestEditFolhaForm_NaoEncontrada(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)

	w := doForm(t, r, http.MethodGet, "/editar/folha-pagamento/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Folha de pagamento não encontrada.")
}

func TestUpdateFolha_NaoEncontrada(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodPost, "/editar/folha-pagamento/999", token,
		folhaForm(pessoaID, "5000", "0", "100", "0", "2024-03-01"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Folha de pagamento não encontrada.")
}

// A validação numérica vale também no update (regra simétrica ao create).
func TestUpdateFolha_ValoresNaoNumericos(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")
	folhaID := createFolha(t, r, token, pessoaID, "5000", "100", "2024-03-01")

	w := doForm(t, r, http.MethodPost, "/editar/folha-pagamento/"+formatID(folhaID), token,
		folhaForm(pessoaID, "muito", "0", "100", "0", "2024-03-01"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Salário, comissão, descontos e gratificações devem ser números válidos.")
}

func TestUpdateFolha_Sucesso(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	pessoaID := createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")
	folhaID := createFolha(t, r, token, pessoaID, "5000", "100", "2024-03-01")

	w := doForm(t, r, http.MethodPost, "/editar/folha-pagamento/"+formatID(folhaID), token,
		folhaForm(pessoaID, "6000", "250", "120", "80", "2024-04-01"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	folha := body["folha"].(map[string]any)
	assert.Equal(t, 6000.0, folha["salario"])
	assert.Equal(t, 250.0, folha["comissao"])
	assert.Equal(t, 120.0, folha["descontos"])
	assert.Equal(t, 80.0, folha["gratificacoes"])
}

func TestDeleteFolha_NaoEncontrada(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)

	w := doForm(t, r, http.MethodPost, "/deletar/folha-pagamento/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Folha de pagamento não encontrada.")
}

func TestFolhaForm_RetornaPessoas(t *testing.T) {
	r := setupApp(t)
	token := login(t, r)
	profissaoID := createProfissao(t, r, token, "Engenheiro", "ativo")
	createPessoa(t, r, token, "Ana", "12345678901", profissaoID, "Rua Principal 1")

	w := doForm(t, r, http.MethodGet, "/cadastrar/folha-pagamento", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["pessoas"], 1)
}

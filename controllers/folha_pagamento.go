package controllers

import (
	"net/http"

	dbpkg "folha/db"
	"folha/models"

	"github.com/gin-gonic/gin"
)

// FolhaPagamentoRequest recebe os valores como string para distinguir
// campo ausente de campo mal formado na validação.
type FolhaPagamentoRequest struct {
	PessoaID      int64  `json:"pessoa_id" form:"pessoa_id"`
	Salario       string `json:"salario" form:"salario"`
	Comissao      string `json:"comissao" form:"comissao"`
	Descontos     string `json:"descontos" form:"descontos"`
	Gratificacoes string `json:"gratificacoes" form:"gratificacoes"`
	DataPagamento string `json:"data_pagamento" form:"data_pagamento"`
}

// validateFolhaRequest aplica as mesmas regras no create e no update:
// campos obrigatórios, valores numéricos e data YYYY-MM-DD.
// Retorna a mensagem de erro, ou "" quando a requisição é válida.
func validateFolhaRequest(req FolhaPagamentoRequest, folha *models.FolhaPagamento) string {
	if req.PessoaID <= 0 || req.Salario == "" || req.Descontos == "" || req.DataPagamento == "" {
		return "Os campos pessoa, salário, descontos e data de pagamento são obrigatórios."
	}

	salario, okSalario := parseFloatField(req.Salario, false)
	comissao, okComissao := parseFloatField(req.Comissao, true)
	descontos, okDescontos := parseFloatField(req.Descontos, false)
	gratificacoes, okGratificacoes := parseFloatField(req.Gratificacoes, true)
	if !okSalario || !okComissao || !okDescontos || !okGratificacoes {
		return "Salário, comissão, descontos e gratificações devem ser números válidos."
	}

	dataPagamento, ok := parseDateField(req.DataPagamento)
	if !ok {
		return "Data de pagamento inválida. Use o formato YYYY-MM-DD."
	}

	folha.PessoaID = req.PessoaID
	folha.Salario = salario
	folha.Comissao = comissao
	folha.Descontos = descontos
	folha.Gratificacoes = gratificacoes
	folha.DataPagamento = dataPagamento
	return ""
}

// GET /cadastrar/folha-pagamento
// Devolve as pessoas para o front montar o formulário.
func FolhaPagamentoForm(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var pessoas []models.Pessoa
	if err := db.Order("id asc").Find(&pessoas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"pessoas": pessoas})
}

// POST /cadastrar/folha-pagamento
func CreateFolhaPagamento(c *gin.Context) {
	var req FolhaPagamentoRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var pessoa models.Pessoa
	if err := db.First(&pessoa, req.PessoaID).Error; err != nil {
		RespondError(c, "Pessoa inválida.", http.StatusBadRequest)
		return
	}

	var folha models.FolhaPagamento
	if msg := validateFolhaRequest(req, &folha); msg != "" {
		RespondError(c, msg, http.StatusBadRequest)
		return
	}

	if err := db.Create(&folha).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Folha de pagamento cadastrada com sucesso!", "folha": folha})
}

// GET /listar/folha-pagamento
func GetFolhasPagamento(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var folhas []models.FolhaPagamento
	if err := db.Preload("Pessoa").Order("id asc").Find(&folhas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"folhas": folhas})
}

// GET /editar/folha-pagamento/:id
func EditFolhaPagamentoForm(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var folha models.FolhaPagamento
	if err := db.First(&folha, id).Error; err != nil {
		RespondError(c, "Folha de pagamento não encontrada.", http.StatusNotFound)
		return
	}

	var pessoas []models.Pessoa
	if err := db.Order("id asc").Find(&pessoas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"folha": folha, "pessoas": pessoas})
}

// POST /editar/folha-pagamento/:id
func UpdateFolhaPagamento(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req FolhaPagamentoRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var folha models.FolhaPagamento
	if err := db.First(&folha, id).Error; err != nil {
		RespondError(c, "Folha de pagamento não encontrada.", http.StatusNotFound)
		return
	}

	var pessoa models.Pessoa
	if err := db.First(&pessoa, req.PessoaID).Error; err != nil {
		RespondError(c, "Pessoa inválida.", http.StatusBadRequest)
		return
	}

	if msg := validateFolhaRequest(req, &folha); msg != "" {
		RespondError(c, msg, http.StatusBadRequest)
		return
	}

	if err := db.Save(&folha).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Folha de pagamento atualizada com sucesso!", "folha": folha})
}

// POST /deletar/folha-pagamento/:id
func DeleteFolhaPagamento(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var folha models.FolhaPagamento
	if err := db.First(&folha, id).Error; err != nil {
		RespondError(c, "Folha de pagamento não encontrada.", http.StatusNotFound)
		return
	}

	if err := db.Delete(&models.FolhaPagamento{}, "id = ?", id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Folha de pagamento deletada com sucesso!"})
}

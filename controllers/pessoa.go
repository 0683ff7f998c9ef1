package controllers

import (
	"net/http"

	dbpkg "folha/db"
	"folha/models"
	"folha/tools"

	"github.com/gin-gonic/gin"
)

type PessoaRequest struct {
	Nome        string `json:"nome" form:"nome"`
	CPF         string `json:"cpf" form:"cpf"`
	ProfissaoID int64  `json:"profissao_id" form:"profissao_id"`
	Endereco    string `json:"endereco" form:"endereco"`
}

// GET /cadastrar/pessoa
// Devolve as profissões para o front montar o formulário.
func PessoaForm(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var profissoes []models.Profissao
	if err := db.Order("id asc").Find(&profissoes).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"profissoes": profissoes})
}

// POST /cadastrar/pessoa
func CreatePessoa(c *gin.Context) {
	var req PessoaRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if req.Nome == "" || req.CPF == "" || req.ProfissaoID <= 0 || req.Endereco == "" {
		RespondError(c, "Todos os campos são obrigatórios.", http.StatusBadRequest)
		return
	}

	var profissao models.Profissao
	if err := db.First(&profissao, req.ProfissaoID).Error; err != nil {
		RespondError(c, "Profissão inválida.", http.StatusBadRequest)
		return
	}

	if !tools.IsCPFValid(req.CPF) {
		RespondError(c, "CPF inválido.", http.StatusBadRequest)
		return
	}

	var existing models.Pessoa
	if err := db.Where("cpf = ?", req.CPF).First(&existing).Error; err == nil {
		RespondError(c, "CPF já cadastrado.", http.StatusBadRequest)
		return
	}

	pessoa := models.Pessoa{
		Nome:        req.Nome,
		CPF:         req.CPF,
		ProfissaoID: req.ProfissaoID,
		Endereco:    req.Endereco,
	}
	if err := db.Create(&pessoa).Error; err != nil {
		// a constraint pega o que a pré-checagem deixou passar numa corrida
		if dbpkg.IsUniqueViolation(err) {
			RespondError(c, "CPF já cadastrado.", http.StatusBadRequest)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Pessoa cadastrada com sucesso!", "pessoa": pessoa})
}

// GET /listar/pessoa
func GetPessoas(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var pessoas []models.Pessoa
	if err := db.Preload("Profissao").Order("id asc").Find(&pessoas).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"pessoas": pessoas})
}

// GET /editar/pessoa/:id
func EditPessoaForm(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var pessoa models.Pessoa
	if err := db.First(&pessoa, id).Error; err != nil {
		RespondError(c, "Pessoa não encontrada.", http.StatusNotFound)
		return
	}

	var profissoes []models.Profissao
	if err := db.Order("id asc").Find(&profissoes).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"pessoa": pessoa, "profissoes": profissoes})
}

// POST /editar/pessoa/:id
// Revalida profissão e formato do CPF; a unicidade contra outras
// pessoas fica por conta da constraint.
func UpdatePessoa(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req PessoaRequest
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
	if err := db.First(&pessoa, id).Error; err != nil {
		RespondError(c, "Pessoa não encontrada.", http.StatusNotFound)
		return
	}

	if req.Nome == "" || req.CPF == "" || req.ProfissaoID <= 0 || req.Endereco == "" {
		RespondError(c, "Todos os campos são obrigatórios.", http.StatusBadRequest)
		return
	}

	var profissao models.Profissao
	if err := db.First(&profissao, req.ProfissaoID).Error; err != nil {
		RespondError(c, "Profissão inválida.", http.StatusBadRequest)
		return
	}

	if !tools.IsCPFValid(req.CPF) {
		RespondError(c, "CPF inválido.", http.StatusBadRequest)
		return
	}

	pessoa.Nome = req.Nome
	pessoa.CPF = req.CPF
	pessoa.ProfissaoID = req.ProfissaoID
	pessoa.Endereco = req.Endereco

	if err := db.Save(&pessoa).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			RespondError(c, "CPF já cadastrado.", http.StatusBadRequest)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Pessoa atualizada com sucesso!", "pessoa": pessoa})
}

// POST /deletar/pessoa/:id
func DeletePessoa(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var pessoa models.Pessoa
	if err := db.First(&pessoa, id).Error; err != nil {
		RespondError(c, "Pessoa não encontrada.", http.StatusNotFound)
		return
	}

	var dependentes int
	if err := db.Model(&models.FolhaPagamento{}).Where("pessoa_id = ?", pessoa.ID).Count(&dependentes).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if dependentes > 0 {
		RespondError(c, "Não é possível excluir uma pessoa com folha de pagamento associada.", http.StatusConflict)
		return
	}

	if err := db.Delete(&models.Pessoa{}, "id = ?", id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Pessoa excluída com sucesso!"})
}

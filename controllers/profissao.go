package controllers

import (
	"net/http"

	dbpkg "folha/db"
	"folha/models"

	"github.com/gin-gonic/gin"
)

type ProfissaoRequest struct {
	Nome   string `json:"nome" form:"nome"`
	Status string `json:"status" form:"status"`
}

// GET /cadastrar/profissao
func ProfissaoForm(c *gin.Context) {
	RespondSuccess(c, gin.H{"status": "ok"})
}

// POST /cadastrar/profissao
func CreateProfissao(c *gin.Context) {
	var req ProfissaoRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	if req.Nome == "" || req.Status == "" {
		RespondError(c, "Todos os campos são obrigatórios.", http.StatusBadRequest)
		return
	}

	var existing models.Profissao
	if err := db.Where("nome = ?", req.Nome).First(&existing).Error; err == nil {
		RespondError(c, "Profissão já cadastrada.", http.StatusBadRequest)
		return
	}

	profissao := models.Profissao{Nome: req.Nome, Status: req.Status}
	if err := db.Create(&profissao).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			RespondError(c, "Profissão já cadastrada.", http.StatusBadRequest)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Profissão cadastrada com sucesso!", "profissao": profissao})
}

// GET /listar/profissao
func GetProfissoes(c *gin.Context) {
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

// GET /editar/profissao/:id
func EditProfissaoForm(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var profissao models.Profissao
	if err := db.First(&profissao, id).Error; err != nil {
		RespondError(c, "Profissão não encontrada.", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"profissao": profissao})
}

// POST /editar/profissao/:id
func UpdateProfissao(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req ProfissaoRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var profissao models.Profissao
	if err := db.First(&profissao, id).Error; err != nil {
		RespondError(c, "Profissão não encontrada.", http.StatusNotFound)
		return
	}

	if req.Nome == "" || req.Status == "" {
		RespondError(c, "Todos os campos são obrigatórios.", http.StatusBadRequest)
		return
	}

	profissao.Nome = req.Nome
	profissao.Status = req.Status

	// o nome continua único; renomear para um nome existente cai na constraint
	if err := db.Save(&profissao).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			RespondError(c, "Profissão já cadastrada.", http.StatusBadRequest)
			return
		}
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Profissão atualizada com sucesso!", "profissao": profissao})
}

// POST /deletar/profissao/:id
func DeleteProfissao(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return
	}

	var profissao models.Profissao
	if err := db.First(&profissao, id).Error; err != nil {
		RespondError(c, "Profissão não encontrada.", http.StatusNotFound)
		return
	}

	var dependentes int
	if err := db.Model(&models.Pessoa{}).Where("profissao_id = ?", profissao.ID).Count(&dependentes).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if dependentes > 0 {
		RespondError(c, "Não é possível excluir uma profissão com pessoas associadas.", http.StatusConflict)
		return
	}

	if err := db.Delete(&models.Profissao{}, "id = ?", id).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"message": "Profissão excluída com sucesso!"})
}

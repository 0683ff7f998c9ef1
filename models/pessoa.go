package models

import "time"

// Pessoa representa um funcionário cadastrado.
// O CPF é uma string numérica de 11 dígitos, única entre pessoas.
type Pessoa struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome        string     `gorm:"not null" json:"nome" form:"nome"`
	CPF         string     `gorm:"column:cpf;not null;unique" json:"cpf" form:"cpf"`
	ProfissaoID int64      `gorm:"not null;index" json:"profissao_id" form:"profissao_id"`
	Endereco    string     `gorm:"not null" json:"endereco" form:"endereco"`
	Profissao   *Profissao `json:"profissao,omitempty"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

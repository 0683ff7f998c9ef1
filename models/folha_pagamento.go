package models

import "time"

// FolhaPagamento representa um lançamento de pagamento de uma pessoa em
// uma data. Não há unicidade além do id; a entidade é terminal (nada
// depende dela), então a exclusão é incondicional.
type FolhaPagamento struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	PessoaID      int64      `gorm:"not null;index" json:"pessoa_id" form:"pessoa_id"`
	Salario       float64    `gorm:"not null;default:0" json:"salario"`
	Comissao      float64    `gorm:"not null;default:0" json:"comissao"`
	Descontos     float64    `gorm:"not null;default:0" json:"descontos"`
	Gratificacoes float64    `gorm:"not null;default:0" json:"gratificacoes"`
	DataPagamento time.Time  `gorm:"not null" json:"data_pagamento"`
	Pessoa        *Pessoa    `json:"pessoa,omitempty"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

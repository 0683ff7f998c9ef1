package models

import "time"

// Profissao representa uma categoria de trabalho referenciada por pessoas.
// O nome é único entre profissões.
type Profissao struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Nome      string     `gorm:"not null;unique" json:"nome" form:"nome"`
	Status    string     `gorm:"not null" json:"status" form:"status"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

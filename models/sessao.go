package models

import "time"

// Sessao representa uma sessão de login persistida.
// Guardamos apenas o hash do token (nunca o token em si) para reduzir
// impacto em caso de vazamento do DB. O logout marca RevokedAt, o que
// invalida o token no servidor mesmo antes do exp.
type Sessao struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	TokenHash string     `gorm:"not null;unique_index" json:"-"`
	RevokedAt *time.Time `json:"revoked_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (s Sessao) IsRevoked() bool {
	return s.RevokedAt != nil
}

func (s Sessao) IsExpired(now time.Time) bool {
	if s.ExpiresAt == nil {
		return false
	}
	return now.After(*s.ExpiresAt)
}

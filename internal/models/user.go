package models

import "github.com/google/uuid"

// User is a row of usuarios. Senha is compared verbatim at login.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nome  string    `gorm:"size:120;not null" json:"nome"`
	Email string    `gorm:"size:120;index;not null" json:"email"`
	Senha string    `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Exam struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Nome    string `gorm:"not null" json:"nome"`
	CPF     string `gorm:"column:cpf;not null" json:"cpf"`
	Empresa string `json:"empresa"`
	Planta  string `json:"planta"`
	Exame   string `gorm:"not null" json:"exame"`
	Status  string `gorm:"size:60;not null;default:'Em espera'" json:"status"`

	// Data is an ISO date string kept as text; it is not parsed.
	Data string `gorm:"type:text;not null;index" json:"data"`

	CriadoPor uuid.UUID `gorm:"type:uuid;not null;index" json:"criado_por"`
	CriadoEm  time.Time `gorm:"column:criado_em;autoCreateTime" json:"criado_em"`
}

func (Exam) TableName() string {
	return "exames"
}

package dto

import "time"

type ExamListDTO struct {
	ID          string    `json:"id"`
	Nome        string    `json:"nome"`
	CPF         string    `json:"cpf"`
	Empresa     string    `json:"empresa"`
	Planta      string    `json:"planta"`
	Exame       string    `json:"exame"`
	Status      string    `json:"status"`
	KnownStatus bool      `json:"known_status"`
	Data        string    `json:"data"`
	CriadoEm    time.Time `json:"criado_em"`
}

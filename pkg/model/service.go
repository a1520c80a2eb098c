package model

type Service struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"nome" validate:"required,min=2,max=100"`
	DurationMin int    `json:"duracao_minutos" validate:"required,min=5,max=480"`
	Active      bool   `json:"ativo"`
}

package model

import (
	"time"
)

const (
	BookingStatusConfirmed = "confirmado"
	BookingStatusCancelled = "cancelado"
)

type Booking struct {
	ID          string    `json:"id,omitempty"`
	AttendantID string    `json:"atendente_id" validate:"required"`
	ClientPhone string    `json:"telefone_cliente" validate:"required,e164"`
	ClientName  string    `json:"nome_cliente,omitempty" validate:"omitempty,min=2,max=100"`
	ServiceID   string    `json:"servico_id,omitempty"`
	Date        string    `json:"data" validate:"required,datetime=2006-01-02"`
	StartTime   string    `json:"hora_inicio" validate:"required,valid_time_of_day"`
	DurationMin int       `json:"duracao_minutos,omitempty" validate:"omitempty,min=5,max=480"`
	Status      string    `json:"status" validate:"required,oneof=confirmado cancelado"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Duration returns the booked length in minutes, falling back to defaultMin
// for rows created before the duration column existed.
func (b *Booking) Duration(defaultMin int) int {
	if b.DurationMin > 0 {
		return b.DurationMin
	}
	return defaultMin
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

type BookingUpdate struct {
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=confirmado cancelado"`
	Date      string `json:"data,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"hora_inicio,omitempty" validate:"omitempty,valid_time_of_day"`
}

type BookingRequest struct {
	AttendantID    string `json:"atendente_id" validate:"required"`
	ClientPhone    string `json:"telefone_cliente" validate:"required,e164"`
	ClientName     string `json:"nome_cliente,omitempty" validate:"omitempty,min=2,max=100"`
	DateExpression string `json:"expressao_data" validate:"required,min=1,max=120"`
	StartTime      string `json:"hora_inicio" validate:"required,valid_time_of_day"`
	ServiceID      string `json:"servico_id,omitempty"`
}

package model

import (
	"time"
)

type Attendant struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"nome" validate:"required,min=2,max=100"`
	Phone     string    `json:"telefone,omitempty" validate:"omitempty,e164"`
	Active    bool      `json:"ativo"`
	Weekdays  []int     `json:"dias_atendimento,omitempty" validate:"omitempty,max=7,dive,min=0,max=6"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// WorksOn reports whether the attendant's recurring weekday set includes d.
func (a *Attendant) WorksOn(d time.Weekday) bool {
	for _, wd := range a.Weekdays {
		if wd == int(d) {
			return true
		}
	}
	return false
}

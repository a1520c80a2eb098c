package model

import (
	"time"
)

type WorkWindow struct {
	ID          string `json:"id,omitempty"`
	AttendantID string `json:"atendente_id" validate:"required"`
	Weekdays    []int  `json:"dias_semana,omitempty" validate:"omitempty,max=7,dive,min=0,max=6"`
	Weekday     *int   `json:"dia_semana,omitempty" validate:"omitempty,min=0,max=6"`
	StartTime   string `json:"hora_inicio" validate:"required,valid_time_of_day"`
	EndTime     string `json:"hora_fim,omitempty" validate:"omitempty,valid_time_of_day"`
	DurationMin int    `json:"duracao_minutos,omitempty" validate:"omitempty,min=5,max=480"`
}

// AppliesTo consults the union of the multi-day list and the legacy
// single-day column; rows created before the migration carry dia_semana only.
func (w *WorkWindow) AppliesTo(d time.Weekday) bool {
	for _, wd := range w.Weekdays {
		if wd == int(d) {
			return true
		}
	}
	return w.Weekday != nil && *w.Weekday == int(d)
}

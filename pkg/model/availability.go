package model

import (
	"time"
)

// ResolvedDate is the canonical form of a free-form date expression. Weekday
// is always derived from Date, never from a weekday name the user typed.
type ResolvedDate struct {
	Date        time.Time `json:"-"`
	ISODate     string    `json:"data"`
	Display     string    `json:"data_formatada"`
	WeekdayName string    `json:"dia_semana_nome"`
	Weekday     int       `json:"dia_semana"`
}

// Slot is a bookable start time. Slots are computed on demand and never
// persisted.
type Slot struct {
	StartTime   string `json:"hora_inicio"`
	DurationMin int    `json:"duracao_minutos"`
}

type DaySummary struct {
	ISODate     string `json:"data"`
	Display     string `json:"data_formatada"`
	WeekdayName string `json:"dia_semana_nome"`
	Weekday     int    `json:"dia_semana"`
	Available   bool   `json:"disponivel"`
	SlotCount   int    `json:"total_horarios"`
}

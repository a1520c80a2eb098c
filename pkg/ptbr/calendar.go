// Package ptbr holds the Brazilian Portuguese calendar vocabulary used to
// interpret dates in conversational text. Lookups are case and diacritic
// insensitive, so "Sábado", "sabado" and "SAB" all resolve to time.Saturday.
package ptbr

import (
	"strings"
	"time"

	"zapagenda/pkg/sanitizer"
)

var (
	months = map[string]time.Month{
		"janeiro":   time.January,
		"jan":       time.January,
		"fevereiro": time.February,
		"fev":       time.February,
		"marco":     time.March,
		"mar":       time.March,
		"abril":     time.April,
		"abr":       time.April,
		"maio":      time.May,
		"mai":       time.May,
		"junho":     time.June,
		"jun":       time.June,
		"julho":     time.July,
		"jul":       time.July,
		"agosto":    time.August,
		"ago":       time.August,
		"setembro":  time.September,
		"set":       time.September,
		"outubro":   time.October,
		"out":       time.October,
		"novembro":  time.November,
		"nov":       time.November,
		"dezembro":  time.December,
		"dez":       time.December,
	}

	weekdays = map[string]time.Weekday{
		"domingo":       time.Sunday,
		"dom":           time.Sunday,
		"segunda":       time.Monday,
		"segunda-feira": time.Monday,
		"seg":           time.Monday,
		"terca":         time.Tuesday,
		"terca-feira":   time.Tuesday,
		"ter":           time.Tuesday,
		"quarta":        time.Wednesday,
		"quarta-feira":  time.Wednesday,
		"qua":           time.Wednesday,
		"quinta":        time.Thursday,
		"quinta-feira":  time.Thursday,
		"qui":           time.Thursday,
		"sexta":         time.Friday,
		"sexta-feira":   time.Friday,
		"sex":           time.Friday,
		"sabado":        time.Saturday,
		"sab":           time.Saturday,
	}

	monthNames = map[time.Month]string{
		time.January:   "janeiro",
		time.February:  "fevereiro",
		time.March:     "março",
		time.April:     "abril",
		time.May:       "maio",
		time.June:      "junho",
		time.July:      "julho",
		time.August:    "agosto",
		time.September: "setembro",
		time.October:   "outubro",
		time.November:  "novembro",
		time.December:  "dezembro",
	}

	weekdayNames = map[time.Weekday]string{
		time.Sunday:    "domingo",
		time.Monday:    "segunda-feira",
		time.Tuesday:   "terça-feira",
		time.Wednesday: "quarta-feira",
		time.Thursday:  "quinta-feira",
		time.Friday:    "sexta-feira",
		time.Saturday:  "sábado",
	}
)

func foldToken(token string) string {
	return sanitizer.FoldDiacritics(strings.ToLower(strings.TrimSpace(token)))
}

// MonthNumber resolves a Portuguese month name or three-letter abbreviation.
func MonthNumber(token string) (time.Month, bool) {
	m, ok := months[foldToken(token)]
	return m, ok
}

// WeekdayNumber resolves a Portuguese weekday name, its "-feira" form or a
// three-letter abbreviation.
func WeekdayNumber(token string) (time.Weekday, bool) {
	d, ok := weekdays[foldToken(token)]
	return d, ok
}

func MonthName(m time.Month) string {
	return monthNames[m]
}

func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// FindWeekday scans an expression and returns the first weekday it names.
// Tokens are matched whole, so "quinta" is found in "quinta que vem" but
// not inside "quintal".
func FindWeekday(expression string) (time.Weekday, bool) {
	for _, token := range strings.Fields(expression) {
		token = strings.Trim(token, ",.;:!?()")
		if d, ok := weekdays[foldToken(token)]; ok {
			return d, true
		}
	}
	return time.Sunday, false
}

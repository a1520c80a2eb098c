// Package dates resolves conversational Portuguese date expressions
// ("amanhã", "dia 1 de abril", "próxima segunda") into calendar dates.
package dates

import (
	"strings"
	"time"

	apperrors "zapagenda/pkg/errors"
	"zapagenda/pkg/model"
	"zapagenda/pkg/ptbr"
	"zapagenda/pkg/sanitizer"
)

// Resolver turns free-form date expressions into calendar dates. It carries
// no request state and is safe for concurrent use.
type Resolver struct {
	keywords map[string]int // literal expression -> day offset from today
}

func NewResolver() *Resolver {
	return &Resolver{
		keywords: map[string]int{
			"hoje":             0,
			"amanha":           1,
			"depois de amanha": 2,
		},
	}
}

// Resolve interprets expression relative to now. Grammar families are tried
// in order; the first that recognizes the expression decides the date.
//
// The weekday in the result is always computed from the resolved date. When
// the expression also names a weekday, the two are compared and a conflict
// surfaces as a WEEKDAY_MISMATCH error; the named weekday is never trusted
// over the date, nor the date over the name.
func (r *Resolver) Resolve(expression string, now time.Time) (*model.ResolvedDate, error) {
	in := input{
		normalized: sanitizer.NormalizeExpression(expression),
		raw:        strings.TrimSpace(expression),
	}
	if in.normalized == "" {
		return nil, apperrors.UnrecognizedFormat(expression)
	}

	rules := []rule{
		r.parseKeyword,
		r.parseDayOfMonth,
		r.parseWeekdayWithSlash, // before the loose weekday+day form, which would eat slash dates and drop their year
		r.parseWeekdayWithDay,
		r.parseNextWeekday,
		r.parseSlashDate,
		r.parseGenericLayout,
	}

	for _, parse := range rules {
		d, err := parse(in, now)
		if err != nil {
			return nil, err
		}
		if d == nil {
			continue
		}
		if !d.implied {
			if err := checkNamedWeekday(in.normalized, d.date); err != nil {
				return nil, err
			}
		}
		return newResolvedDate(d.date), nil
	}

	return nil, apperrors.UnrecognizedFormat(expression)
}

// checkNamedWeekday compares the weekday named in the expression, if any,
// against the weekday of the derived date. It never corrects either side.
func checkNamedWeekday(normalized string, date time.Time) error {
	named, ok := ptbr.FindWeekday(normalized)
	if !ok {
		return nil
	}
	actual := date.Weekday()
	if actual == named {
		return nil
	}
	return apperrors.WeekdayMismatch(
		int(named), int(actual),
		ptbr.WeekdayName(named), ptbr.WeekdayName(actual),
		ptbr.FormatISO(date),
	)
}

func newResolvedDate(date time.Time) *model.ResolvedDate {
	return &model.ResolvedDate{
		Date:        date,
		ISODate:     ptbr.FormatISO(date),
		Display:     ptbr.FormatDisplay(date),
		WeekdayName: ptbr.WeekdayName(date.Weekday()),
		Weekday:     int(date.Weekday()),
	}
}

// buildDate assembles a date and rejects component overflow, so 30/02 fails
// instead of normalizing into March.
func buildDate(year int, month time.Month, day int, loc *time.Location) (time.Time, error) {
	date := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if date.Year() != year || date.Month() != month || date.Day() != day {
		return time.Time{}, apperrors.InvalidCalendarDate(day, int(month), year)
	}
	return date, nil
}

// dayOf strips the time of day, keeping the location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

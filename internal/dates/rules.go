package dates

import (
	"regexp"
	"strconv"
	"time"

	apperrors "zapagenda/pkg/errors"
	"zapagenda/pkg/ptbr"
)

// Expression shapes, matched against normalized text (lowercase, no
// diacritics, single spaces).
var (
	reDayOfMonth   = regexp.MustCompile(`^(?:dia )?(\d{1,2}) de ([a-z]+)(?: de (\d{4}))?$`)
	reWeekdaySlash = regexp.MustCompile(`^([a-z]+(?:-feira)?)[ ,-]+(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)
	reWeekdayDay   = regexp.MustCompile(`^([a-z]+(?:-feira)?)[ ,-]+(?:dia )?(\d{1,2})(?: de ([a-z]+))?(?: de (\d{4}))?`)
	reNextWeekday  = regexp.MustCompile(`^proxim[oa] ([a-z]+(?:-feira)?)$`)
	reSlashDate    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)
	reEmbeddedDM   = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
)

// Layouts accepted by the generic fallback. These are matched against the
// raw expression because RFC 3339 markers are case-sensitive.
var genericLayouts = []string{
	ptbr.ISOLayout,
	time.RFC3339,
	ptbr.DisplayLayout,
}

type input struct {
	normalized string
	raw        string
}

// derivation is the outcome of one grammar family: the date it produced and
// whether that date came from the weekday name itself, in which case the
// weekday cross-check does not apply.
type derivation struct {
	date    time.Time
	implied bool
}

// rule inspects the expression and returns nil when it does not recognize
// the shape, letting the next family try. A non-nil error means the shape
// matched but the content is invalid, and resolution stops.
type rule func(in input, now time.Time) (*derivation, error)

// "hoje", "amanha", "depois de amanha"
func (r *Resolver) parseKeyword(in input, now time.Time) (*derivation, error) {
	offset, ok := r.keywords[in.normalized]
	if !ok {
		return nil, nil
	}
	return &derivation{date: dayOf(now).AddDate(0, 0, offset), implied: true}, nil
}

// "dia 1 de abril", "5 de maio de 2025"
func (r *Resolver) parseDayOfMonth(in input, now time.Time) (*derivation, error) {
	m := reDayOfMonth.FindStringSubmatch(in.normalized)
	if m == nil {
		return nil, nil
	}

	month, ok := ptbr.MonthNumber(m[2])
	if !ok {
		return nil, apperrors.UnknownMonth(m[2])
	}

	day, _ := strconv.Atoi(m[1])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	date, err := buildDate(year, month, day, now.Location())
	if err != nil {
		return nil, err
	}
	return &derivation{date: date}, nil
}

// "segunda-feira, 05/08/2024", "seg 05/08"
func (r *Resolver) parseWeekdayWithSlash(in input, now time.Time) (*derivation, error) {
	m := reWeekdaySlash.FindStringSubmatch(in.normalized)
	if m == nil {
		return nil, nil
	}
	if _, ok := ptbr.WeekdayNumber(m[1]); !ok {
		return nil, nil
	}

	day, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	year := now.Year()
	if m[4] != "" {
		year, _ = strconv.Atoi(m[4])
	}

	date, err := buildDate(year, time.Month(month), day, now.Location())
	if err != nil {
		return nil, err
	}
	return &derivation{date: date}, nil
}

// "segunda, dia 5", "quinta 5 de agosto de 2024"
func (r *Resolver) parseWeekdayWithDay(in input, now time.Time) (*derivation, error) {
	m := reWeekdayDay.FindStringSubmatch(in.normalized)
	if m == nil {
		return nil, nil
	}
	if _, ok := ptbr.WeekdayNumber(m[1]); !ok {
		return nil, nil
	}

	day, _ := strconv.Atoi(m[2])

	month := now.Month()
	if m[3] != "" {
		named, ok := ptbr.MonthNumber(m[3])
		if !ok {
			return nil, apperrors.UnknownMonth(m[3])
		}
		month = named
	} else if dm := reEmbeddedDM.FindStringSubmatch(in.normalized); dm != nil {
		// A slash date elsewhere in the phrase lends its month.
		n, _ := strconv.Atoi(dm[2])
		month = time.Month(n)
	}

	year := now.Year()
	if m[4] != "" {
		year, _ = strconv.Atoi(m[4])
	}

	date, err := buildDate(year, month, day, now.Location())
	if err != nil {
		return nil, err
	}
	return &derivation{date: date}, nil
}

// "proxima segunda", "proximo sabado", bare "sexta"
func (r *Resolver) parseNextWeekday(in input, now time.Time) (*derivation, error) {
	var target time.Weekday
	var ok bool
	if m := reNextWeekday.FindStringSubmatch(in.normalized); m != nil {
		target, ok = ptbr.WeekdayNumber(m[1])
	} else {
		target, ok = ptbr.WeekdayNumber(in.normalized)
	}
	if !ok {
		return nil, nil
	}

	// Always strictly in the future: "proxima segunda" said on a Monday
	// means seven days out, never today.
	delta := int(target) - int(now.Weekday())
	if delta <= 0 {
		delta += 7
	}
	return &derivation{date: dayOf(now).AddDate(0, 0, delta), implied: true}, nil
}

// "05/08", "05/08/2024"
func (r *Resolver) parseSlashDate(in input, now time.Time) (*derivation, error) {
	m := reSlashDate.FindStringSubmatch(in.normalized)
	if m == nil {
		return nil, nil
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])

	if m[3] != "" {
		year, _ := strconv.Atoi(m[3])
		date, err := buildDate(year, time.Month(month), day, now.Location())
		if err != nil {
			return nil, err
		}
		return &derivation{date: date}, nil
	}

	date, err := buildDate(now.Year(), time.Month(month), day, now.Location())
	if err != nil {
		return nil, err
	}
	// Omitted year and the date already passed: the user means the next one.
	if date.Before(dayOf(now)) {
		date = date.AddDate(1, 0, 0)
	}
	return &derivation{date: date}, nil
}

// ISO dates, RFC 3339 timestamps and zero-padded d/m/Y.
func (r *Resolver) parseGenericLayout(in input, now time.Time) (*derivation, error) {
	for _, layout := range genericLayouts {
		parsed, err := time.ParseInLocation(layout, in.raw, now.Location())
		if err != nil {
			continue
		}
		y, m, d := parsed.Date()
		return &derivation{date: time.Date(y, m, d, 0, 0, 0, 0, now.Location())}, nil
	}
	return nil, nil
}

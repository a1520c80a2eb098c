package ptbr

import "time"

const (
	// ISOLayout is the canonical wire format for resolved dates.
	ISOLayout = "2006-01-02"

	// DisplayLayout is the day-first format Brazilians read dates in.
	DisplayLayout = "02/01/2006"
)

func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

func FormatDisplay(t time.Time) string {
	return t.Format(DisplayLayout)
}

// ParseISO interprets a canonical date string at midnight in loc.
func ParseISO(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(ISOLayout, value, loc)
}

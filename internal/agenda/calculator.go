package agenda

import (
	"fmt"
	"sort"
	"time"

	"zapagenda/pkg/model"
	"zapagenda/pkg/ptbr"
)

// Calculator carries the scheduling constants that used to float around as
// magic numbers: minimum lead time before a same-day slot, the fallback
// duration for bookings and services without one, and how far ahead the
// calendar reaches.
type Calculator struct {
	LeadTime           time.Duration
	DefaultDurationMin int
	AdvanceDays        int
}

func NewCalculator(leadTime time.Duration, defaultDurationMin, advanceDays int) *Calculator {
	return &Calculator{
		LeadTime:           leadTime,
		DefaultDurationMin: defaultDurationMin,
		AdvanceDays:        advanceDays,
	}
}

// BookingsFunc supplies the bookings occupying one calendar day.
type BookingsFunc func(date time.Time) ([]model.Booking, error)

// AvailableSlots intersects the attendant's windows for the target weekday
// with the given bookings. Each window is one fixed candidate start, not a
// range to subdivide. Candidates on the current day that begin before
// now+LeadTime are skipped, survivors are deduplicated by start time (the
// first window wins) and returned ascending.
func (c *Calculator) AvailableSlots(windows []model.WorkWindow, bookings []model.Booking, serviceDuration int, targetDate, now time.Time) []model.Slot {
	if serviceDuration <= 0 {
		serviceDuration = c.DefaultDurationMin
	}

	active := ActiveBookings(bookings)
	sameDay := sameDate(targetDate, now)
	cutoff := now.Add(c.LeadTime)

	slots := make([]model.Slot, 0)
	seen := make(map[int]bool)

	for _, w := range WindowsFor(windows, targetDate.Weekday()) {
		start, ok := minutesOf(w.StartTime)
		if !ok {
			continue // a malformed window record does not poison the whole day
		}

		if sameDay && atMinutes(targetDate, start).Before(cutoff) {
			continue
		}

		if c.conflicts(start, start+serviceDuration, active) {
			continue
		}

		if seen[start] {
			continue
		}
		seen[start] = true

		slots = append(slots, model.Slot{
			StartTime:   fmt.Sprintf("%02d:%02d", start/60, start%60),
			DurationMin: serviceDuration,
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})
	return slots
}

// BuildCalendar summarizes each day in [start, end], clamped to AdvanceDays
// past start. Days outside the attendant's recurring weekday set are marked
// unavailable without fetching bookings; a workday can still come out
// unavailable when every slot is taken.
func (c *Calculator) BuildCalendar(attendant *model.Attendant, windows []model.WorkWindow, bookingsFor BookingsFunc, serviceDuration int, start, end, now time.Time) ([]model.DaySummary, error) {
	first := dayOf(start)
	last := dayOf(end)

	if limit := first.AddDate(0, 0, c.AdvanceDays); last.After(limit) {
		last = limit
	}

	summaries := make([]model.DaySummary, 0)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		summary := model.DaySummary{
			ISODate:     ptbr.FormatISO(day),
			Display:     ptbr.FormatDisplay(day),
			WeekdayName: ptbr.WeekdayName(day.Weekday()),
			Weekday:     int(day.Weekday()),
		}

		if attendant.WorksOn(day.Weekday()) {
			bookings, err := bookingsFor(day)
			if err != nil {
				return nil, err
			}
			slots := c.AvailableSlots(windows, bookings, serviceDuration, day, now)
			summary.SlotCount = len(slots)
			summary.Available = len(slots) > 0
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (c *Calculator) conflicts(candidateStart, candidateEnd int, bookings []model.Booking) bool {
	for _, b := range bookings {
		bookingStart, ok := minutesOf(b.StartTime)
		if !ok {
			continue
		}
		bookingEnd := bookingStart + b.Duration(c.DefaultDurationMin)
		if overlaps(candidateStart, candidateEnd, bookingStart, bookingEnd) {
			return true
		}
	}
	return false
}

// overlaps reports whether a candidate [cs, ce) collides with a booking
// [bs, be): starting inside it, ending inside it, or swallowing it whole.
func overlaps(cs, ce, bs, be int) bool {
	if cs >= bs && cs < be {
		return true
	}
	if ce > bs && ce <= be {
		return true
	}
	if cs <= bs && ce >= be {
		return true
	}
	return false
}

// minutesOf parses an HH:MM wall-clock time into minutes since midnight.
func minutesOf(hhmm string) (int, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func atMinutes(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

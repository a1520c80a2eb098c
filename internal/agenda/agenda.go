// Package agenda computes bookable slots from work windows and existing
// bookings. Everything here is pure calendar math; callers fetch the data.
package agenda

import (
	"time"

	"zapagenda/pkg/model"
)

// WindowsFor keeps the windows recurring on the given weekday, consulting
// both the multi-day list and the legacy single-day column. Input order is
// preserved; ordering happens downstream.
func WindowsFor(windows []model.WorkWindow, weekday time.Weekday) []model.WorkWindow {
	matched := make([]model.WorkWindow, 0, len(windows))
	for _, w := range windows {
		if w.AppliesTo(weekday) {
			matched = append(matched, w)
		}
	}
	return matched
}

// ActiveBookings drops cancelled bookings; only the remainder occupy time.
func ActiveBookings(bookings []model.Booking) []model.Booking {
	active := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsCancelled() {
			active = append(active, b)
		}
	}
	return active
}

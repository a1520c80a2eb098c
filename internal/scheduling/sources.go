package scheduling

import (
	"context"

	"zapagenda/pkg/model"
)

// AttendantSource yields attendant records. Satisfied by client.AttendantClient.
type AttendantSource interface {
	GetByID(ctx context.Context, id string) (*model.Attendant, error)
}

// WindowSource yields the recurring work windows of an attendant. Satisfied
// by client.WorkWindowClient.
type WindowSource interface {
	ListByAttendant(ctx context.Context, attendantID string) ([]model.WorkWindow, error)
}

// BookingSource yields the non-cancelled bookings of an attendant on a given
// day. Satisfied by client.BookingClient.
type BookingSource interface {
	ListActive(ctx context.Context, attendantID, isoDate string) ([]model.Booking, error)
}

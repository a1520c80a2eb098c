package booking

import (
	"context"

	"zapagenda/pkg/kafka"
	"zapagenda/pkg/model"
)

// Event types carried in the event-type header of every published message.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

const eventSource = "zapagenda"

// Publisher is the slice of kafka.Producer the service publishes through.
type Publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// emitEvent is best-effort. Bookings live in the record store; a broker
// outage must never fail the operation that already committed.
func (s *bookingService) emitEvent(ctx context.Context, eventType string, b *model.Booking) {
	if s.events == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(b.ClientPhone).
		WithValue(b).
		WithEventType(eventType).
		WithSource(eventSource).
		Build()

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Error("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", b.ID,
			"error", err,
		)
	}
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"zapagenda/internal/booking/validator"
	"zapagenda/internal/scheduling"
	"zapagenda/pkg/client"
	"zapagenda/pkg/config"
	apperrors "zapagenda/pkg/errors"
	"zapagenda/pkg/model"
	"zapagenda/pkg/ptbr"
	"zapagenda/pkg/sanitizer"

	"github.com/google/uuid"
)

// BookingStore is the slice of client.BookingClient the service writes
// through. Cancellation is a status patch, never a delete.
type BookingStore interface {
	ListByClient(ctx context.Context, clientPhone, fromISODate string) ([]model.Booking, error)
	Insert(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	Cancel(ctx context.Context, id string) (*model.Booking, error)
}

// ServiceSource yields service records for duration lookup. Satisfied by
// client.ServiceClient.
type ServiceSource interface {
	GetByID(ctx context.Context, id string) (*model.Service, error)
}

// Notifier delivers WhatsApp texts to the client. Satisfied by
// client.MessagingClient.
type Notifier interface {
	SendText(ctx context.Context, phone, text string) error
}

// CancelOutcome is the two-armed result of a cancellation request. Cancelled
// is set when exactly one booking matched or the selector resolved one;
// otherwise Candidates carries the ambiguous set offered to the client.
type CancelOutcome struct {
	Cancelled  *model.Booking  `json:"cancelado,omitempty"`
	Candidates []model.Booking `json:"candidatos,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	Cancel(ctx context.Context, conv *model.Conversation, selector string) (*CancelOutcome, error)
	ListForClient(ctx context.Context, clientPhone string) ([]model.Booking, error)
}

type bookingService struct {
	scheduling scheduling.Service
	store      BookingStore
	services   ServiceSource
	validator  *validator.BookingValidator
	events     Publisher
	notifier   Notifier
	cfg        *config.Config
}

func NewService(
	schedulingSvc scheduling.Service,
	store BookingStore,
	services ServiceSource,
	v *validator.BookingValidator,
	events Publisher,
	notifier Notifier,
	cfg *config.Config,
) Service {
	return &bookingService{
		scheduling: schedulingSvc,
		store:      store,
		services:   services,
		validator:  v,
		events:     events,
		notifier:   notifier,
		cfg:        cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.sanitize(req)

	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed",
			"attendant_id", req.AttendantID,
			"error", err,
		)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	duration, err := s.resolveDuration(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	result, err := s.scheduling.AvailableSlots(ctx, req.AttendantID, req.DateExpression, duration)
	if err != nil {
		return nil, err
	}

	startTime := canonicalTimeOfDay(req.StartTime)
	if !hasSlot(result.Slots, startTime) {
		s.cfg.Log.Warn("Requested slot not available",
			"attendant_id", req.AttendantID,
			"date", result.Date.ISODate,
			"start_time", startTime,
		)
		return nil, apperrors.Conflict("Requested slot is not available").WithDetails(map[string]any{
			"data":        result.Date.ISODate,
			"hora_inicio": startTime,
		})
	}

	booking := &model.Booking{
		ID:          uuid.New().String(),
		AttendantID: req.AttendantID,
		ClientPhone: req.ClientPhone,
		ClientName:  req.ClientName,
		ServiceID:   req.ServiceID,
		Date:        result.Date.ISODate,
		StartTime:   startTime,
		DurationMin: duration,
		Status:      model.BookingStatusConfirmed,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.store.Insert(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to insert booking",
			"attendant_id", booking.AttendantID,
			"date", booking.Date,
			"start_time", booking.StartTime,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to insert booking", err)
	}

	s.emitEvent(ctx, EventBookingCreated, created)
	s.notify(ctx, created.ClientPhone, confirmationText(created))

	s.cfg.Log.Info("Booking created successfully",
		"id", created.ID,
		"attendant_id", created.AttendantID,
		"date", created.Date,
		"start_time", created.StartTime,
	)
	return created, nil
}

func (s *bookingService) Cancel(ctx context.Context, conv *model.Conversation, selector string) (*CancelOutcome, error) {
	if conv == nil || strings.TrimSpace(conv.ClientPhone) == "" {
		return nil, apperrors.InvalidInput("Conversation with a client phone is required")
	}

	if conv.PendingCancellation != nil {
		return s.resolvePendingCancellation(ctx, conv, selector)
	}

	upcoming, err := s.listUpcoming(ctx, conv.ClientPhone)
	if err != nil {
		return nil, err
	}

	switch len(upcoming) {
	case 0:
		return nil, apperrors.NotFound("Booking")
	case 1:
		cancelled, err := s.cancelByID(ctx, upcoming[0].ID)
		if err != nil {
			return nil, err
		}
		return &CancelOutcome{Cancelled: cancelled}, nil
	default:
		ids := make([]string, len(upcoming))
		for i, b := range upcoming {
			ids[i] = b.ID
		}
		conv.OfferCancellation(ids, time.Now().UTC())
		s.cfg.Log.Info("Cancellation needs disambiguation",
			"client_phone", conv.ClientPhone,
			"candidates", len(upcoming),
		)
		return &CancelOutcome{Candidates: upcoming}, nil
	}
}

func (s *bookingService) ListForClient(ctx context.Context, clientPhone string) ([]model.Booking, error) {
	phone := sanitizer.NormalizePhone(clientPhone)
	if phone == "" {
		return nil, apperrors.InvalidInput("Client phone cannot be empty")
	}
	return s.listUpcoming(ctx, phone)
}

// resolvePendingCancellation matches the client's follow-up reply against
// the candidate set recorded on the conversation.
func (s *bookingService) resolvePendingCancellation(ctx context.Context, conv *model.Conversation, selector string) (*CancelOutcome, error) {
	id, ok := pickBookingID(conv.PendingCancellation.BookingIDs, selector)
	if !ok {
		return nil, apperrors.InvalidInput("Reply with the number of the booking to cancel")
	}

	cancelled, err := s.cancelByID(ctx, id)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			// The offered booking is gone, so the offer is stale.
			conv.ClearCancellation()
		}
		return nil, err
	}

	conv.ClearCancellation()
	return &CancelOutcome{Cancelled: cancelled}, nil
}

func (s *bookingService) cancelByID(ctx context.Context, id string) (*model.Booking, error) {
	cancelled, err := s.store.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, apperrors.NotFound("Booking")
		}
		s.cfg.Log.Error("Failed to cancel booking",
			"booking_id", id,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to cancel booking", err)
	}

	s.emitEvent(ctx, EventBookingCancelled, cancelled)
	s.notify(ctx, cancelled.ClientPhone, cancellationText(cancelled))

	s.cfg.Log.Info("Booking cancelled successfully",
		"id", cancelled.ID,
		"attendant_id", cancelled.AttendantID,
		"date", cancelled.Date,
	)
	return cancelled, nil
}

// listUpcoming returns the client's non-cancelled bookings from today on,
// ordered by date and start time so offer positions stay stable.
func (s *bookingService) listUpcoming(ctx context.Context, clientPhone string) ([]model.Booking, error) {
	todayISO := ptbr.FormatISO(s.currentTime())

	bookings, err := s.store.ListByClient(ctx, clientPhone, todayISO)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings",
			"client_phone", clientPhone,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to list bookings", err)
	}

	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return canonicalTimeOfDay(bookings[i].StartTime) < canonicalTimeOfDay(bookings[j].StartTime)
	})
	return bookings, nil
}

func (s *bookingService) resolveDuration(ctx context.Context, serviceID string) (int, error) {
	if serviceID == "" {
		return s.cfg.DefaultServiceDurationMin, nil
	}

	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return 0, apperrors.NotFound("Service")
		}
		s.cfg.Log.Error("Failed to load service",
			"service_id", serviceID,
			"error", err,
		)
		return 0, apperrors.Internal("Failed to load service", err)
	}
	if !svc.Active {
		return 0, apperrors.InvalidInput("Service is not active")
	}
	if svc.DurationMin > 0 {
		return svc.DurationMin, nil
	}
	return s.cfg.DefaultServiceDurationMin, nil
}

// notify is best-effort like emitEvent: delivery problems never undo a
// stored booking.
func (s *bookingService) notify(ctx context.Context, phone, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendText(ctx, phone, text); err != nil {
		s.cfg.Log.Error("Failed to send booking message",
			"phone", phone,
			"error", err,
		)
	}
}

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.AttendantID = strings.TrimSpace(req.AttendantID)
	req.ClientPhone = sanitizer.NormalizePhone(req.ClientPhone)
	req.ClientName = sanitizer.NormalizeName(req.ClientName)
	req.DateExpression = sanitizer.TrimAndNormalize(req.DateExpression)
	req.StartTime = strings.TrimSpace(req.StartTime)
	req.ServiceID = strings.TrimSpace(req.ServiceID)
}

func (s *bookingService) currentTime() time.Time {
	now := time.Now()
	if s.cfg.Location != nil {
		now = now.In(s.cfg.Location)
	}
	return now
}

// pickBookingID resolves the client's reply against the offered set: a
// 1-based position ("2") or the booking ID itself.
func pickBookingID(offered []string, selector string) (string, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return "", false
	}
	if n, err := strconv.Atoi(selector); err == nil {
		if n >= 1 && n <= len(offered) {
			return offered[n-1], true
		}
		return "", false
	}
	for _, id := range offered {
		if id == selector {
			return id, true
		}
	}
	return "", false
}

func hasSlot(slots []model.Slot, startTime string) bool {
	for _, slot := range slots {
		if slot.StartTime == startTime {
			return true
		}
	}
	return false
}

// canonicalTimeOfDay zero-pads "9:00" so comparisons against computed slot
// times work on equal footing.
func canonicalTimeOfDay(v string) string {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return strings.TrimSpace(v)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func confirmationText(b *model.Booking) string {
	return fmt.Sprintf("Agendamento confirmado para %s às %s.", displayDate(b.Date), b.StartTime)
}

func cancellationText(b *model.Booking) string {
	return fmt.Sprintf("Agendamento de %s às %s foi cancelado.", displayDate(b.Date), b.StartTime)
}

func displayDate(isoDate string) string {
	t, err := ptbr.ParseISO(isoDate, time.UTC)
	if err != nil {
		return isoDate
	}
	return ptbr.FormatDisplay(t)
}

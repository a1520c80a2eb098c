package scheduling

import (
	"context"
	"errors"
	"time"

	"zapagenda/internal/agenda"
	"zapagenda/internal/dates"
	"zapagenda/pkg/client"
	"zapagenda/pkg/config"
	apperrors "zapagenda/pkg/errors"
	"zapagenda/pkg/model"
	"zapagenda/pkg/ptbr"
)

// SlotsResult pairs the resolved target date with the open slots on it.
type SlotsResult struct {
	Date  *model.ResolvedDate `json:"data"`
	Slots []model.Slot        `json:"horarios"`
}

type Service interface {
	ResolveDate(ctx context.Context, expression string) (*model.ResolvedDate, error)
	AvailableSlots(ctx context.Context, attendantID, expression string, serviceDuration int) (*SlotsResult, error)
	Calendar(ctx context.Context, attendantID string, start, end time.Time, serviceDuration int) ([]model.DaySummary, error)
}

type schedulingService struct {
	resolver   *dates.Resolver
	calc       *agenda.Calculator
	attendants AttendantSource
	windows    WindowSource
	bookings   BookingSource
	cfg        *config.Config
}

func NewService(
	attendants AttendantSource,
	windows WindowSource,
	bookings BookingSource,
	cfg *config.Config,
) Service {
	return &schedulingService{
		resolver:   dates.NewResolver(),
		calc:       agenda.NewCalculator(cfg.MinLeadTime, cfg.DefaultServiceDurationMin, cfg.AdvanceBookingDays),
		attendants: attendants,
		windows:    windows,
		bookings:   bookings,
		cfg:        cfg,
	}
}

func (s *schedulingService) ResolveDate(ctx context.Context, expression string) (*model.ResolvedDate, error) {
	resolved, err := s.resolver.Resolve(expression, s.currentTime())
	if err != nil {
		s.cfg.Log.Warn("Date expression did not resolve",
			"expression", expression,
			"error", err,
		)
		return nil, err
	}
	return resolved, nil
}

func (s *schedulingService) AvailableSlots(ctx context.Context, attendantID, expression string, serviceDuration int) (*SlotsResult, error) {
	if attendantID == "" {
		return nil, apperrors.InvalidInput("Attendant ID cannot be empty")
	}

	now := s.currentTime()

	resolved, err := s.resolver.Resolve(expression, now)
	if err != nil {
		s.cfg.Log.Warn("Date expression did not resolve",
			"expression", expression,
			"error", err,
		)
		return nil, err
	}

	if _, err := s.loadActiveAttendant(ctx, attendantID); err != nil {
		return nil, err
	}

	today := dayOf(now)
	if resolved.Date.Before(today) {
		return nil, apperrors.DateInPast(resolved.ISODate)
	}
	if resolved.Date.After(today.AddDate(0, 0, s.cfg.AdvanceBookingDays)) {
		return nil, apperrors.AdvanceLimitExceeded(resolved.ISODate, s.cfg.AdvanceBookingDays)
	}

	windows, err := s.loadWindows(ctx, attendantID)
	if err != nil {
		return nil, err
	}
	if len(agenda.WindowsFor(windows, resolved.Date.Weekday())) == 0 {
		return nil, apperrors.NoWindowsForWeekday(attendantID, resolved.Weekday)
	}

	bookings, err := s.bookings.ListActive(ctx, attendantID, resolved.ISODate)
	if err != nil {
		s.cfg.Log.Error("Failed to load bookings",
			"attendant_id", attendantID,
			"date", resolved.ISODate,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to load bookings", err)
	}

	slots := s.calc.AvailableSlots(windows, bookings, serviceDuration, resolved.Date, now)

	s.cfg.Log.Debug("Availability computed",
		"attendant_id", attendantID,
		"date", resolved.ISODate,
		"slot_count", len(slots),
	)

	return &SlotsResult{Date: resolved, Slots: slots}, nil
}

func (s *schedulingService) Calendar(ctx context.Context, attendantID string, start, end time.Time, serviceDuration int) ([]model.DaySummary, error) {
	if attendantID == "" {
		return nil, apperrors.InvalidInput("Attendant ID cannot be empty")
	}

	attendant, err := s.loadActiveAttendant(ctx, attendantID)
	if err != nil {
		return nil, err
	}

	log := s.cfg.Log.With("attendant_id", attendantID)

	windows, err := s.windows.ListByAttendant(ctx, attendantID)
	if err != nil {
		log.Error("Failed to load work windows", "error", err)
		return nil, apperrors.Internal("Failed to load work windows", err)
	}

	bookingsFor := func(day time.Time) ([]model.Booking, error) {
		isoDate := ptbr.FormatISO(day)
		bookings, err := s.bookings.ListActive(ctx, attendantID, isoDate)
		if err != nil {
			log.Error("Failed to load bookings", "date", isoDate, "error", err)
			return nil, apperrors.Internal("Failed to load bookings", err)
		}
		return bookings, nil
	}

	return s.calc.BuildCalendar(attendant, windows, bookingsFor, serviceDuration, start, end, s.currentTime())
}

// loadActiveAttendant fetches the attendant and rejects unknown or
// deactivated ones, so every caller applies the same gate.
func (s *schedulingService) loadActiveAttendant(ctx context.Context, id string) (*model.Attendant, error) {
	attendant, err := s.attendants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, apperrors.AttendantNotFound(id)
		}
		s.cfg.Log.Error("Failed to load attendant",
			"attendant_id", id,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to load attendant", err)
	}
	if !attendant.Active {
		return nil, apperrors.AttendantInactive(id)
	}
	return attendant, nil
}

func (s *schedulingService) loadWindows(ctx context.Context, attendantID string) ([]model.WorkWindow, error) {
	windows, err := s.windows.ListByAttendant(ctx, attendantID)
	if err != nil {
		s.cfg.Log.Error("Failed to load work windows",
			"attendant_id", attendantID,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to load work windows", err)
	}
	if len(windows) == 0 {
		return nil, apperrors.NoWorkWindows(attendantID)
	}
	return windows, nil
}

func (s *schedulingService) currentTime() time.Time {
	now := time.Now()
	if s.cfg.Location != nil {
		now = now.In(s.cfg.Location)
	}
	return now
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

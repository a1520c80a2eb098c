package agenda

import (
	"errors"
	"strings"
	"testing"
	"time"

	"zapagenda/pkg/model"
)

var (
	// 2024-08-05 is a Monday.
	targetMonday = time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	queryTime    = time.Date(2024, 8, 1, 9, 0, 0, 0, time.UTC)
)

func testCalculator() *Calculator {
	return NewCalculator(30*time.Minute, 30, 30)
}

func window(start string, weekdays ...int) model.WorkWindow {
	return model.WorkWindow{AttendantID: "att-1", Weekdays: weekdays, StartTime: start}
}

func booking(start string, duration int) model.Booking {
	return model.Booking{
		AttendantID: "att-1",
		ClientPhone: "+5511987654321",
		Date:        "2024-08-05",
		StartTime:   start,
		DurationMin: duration,
		Status:      model.BookingStatusConfirmed,
	}
}

func startTimes(slots []model.Slot) string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	return strings.Join(starts, ",")
}

func TestAvailableSlots_Conflicts(t *testing.T) {
	tests := []struct {
		name            string
		windows         []model.WorkWindow
		bookings        []model.Booking
		serviceDuration int
		want            string
	}{
		{
			name:            "booking at the exact same time",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("09:00", 30)},
			serviceDuration: 30,
			want:            "",
		},
		{
			name:            "candidate starts inside a running booking",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("08:45", 30)},
			serviceDuration: 30,
			want:            "",
		},
		{
			name:            "candidate ends inside a booking",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("09:15", 30)},
			serviceDuration: 30,
			want:            "",
		},
		{
			name:            "candidate swallows a shorter booking",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("09:15", 15)},
			serviceDuration: 60,
			want:            "",
		},
		{
			name:            "back to back after the candidate",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("09:30", 30)},
			serviceDuration: 30,
			want:            "09:00",
		},
		{
			name:            "booking ends exactly at the candidate start",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("08:30", 30)},
			serviceDuration: 30,
			want:            "09:00",
		},
		{
			name:    "cancelled bookings occupy nothing",
			windows: []model.WorkWindow{window("09:00", 1)},
			bookings: []model.Booking{
				{Date: "2024-08-05", StartTime: "09:00", DurationMin: 30, Status: model.BookingStatusCancelled},
			},
			serviceDuration: 30,
			want:            "09:00",
		},
		{
			name:            "booking without duration blocks the default width",
			windows:         []model.WorkWindow{window("09:00", 1)},
			bookings:        []model.Booking{booking("09:15", 0)},
			serviceDuration: 30,
			want:            "",
		},
	}

	calc := testCalculator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := calc.AvailableSlots(tt.windows, tt.bookings, tt.serviceDuration, targetMonday, queryTime)
			if got := startTimes(slots); got != tt.want {
				t.Errorf("expected slots [%s], got [%s]", tt.want, got)
			}
		})
	}
}

func TestAvailableSlots_SameDayLeadTime(t *testing.T) {
	windows := []model.WorkWindow{
		window("09:00", 1),
		window("10:15", 1),
		window("10:30", 1),
		window("11:00", 1),
	}

	// 10:00 on the target Monday itself; 30min lead puts the cutoff at 10:30.
	now := time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC)

	slots := testCalculator().AvailableSlots(windows, nil, 30, targetMonday, now)
	if got := startTimes(slots); got != "10:30,11:00" {
		t.Errorf("expected slots [10:30,11:00], got [%s]", got)
	}
}

func TestAvailableSlots_SortsAndDeduplicates(t *testing.T) {
	windows := []model.WorkWindow{
		window("14:00", 1),
		window("09:00", 1),
		window("09:00", 1),
		window("10:30", 1),
	}

	slots := testCalculator().AvailableSlots(windows, nil, 30, targetMonday, queryTime)
	if got := startTimes(slots); got != "09:00,10:30,14:00" {
		t.Errorf("expected slots [09:00,10:30,14:00], got [%s]", got)
	}
}

func TestAvailableSlots_LegacySingleDayColumn(t *testing.T) {
	monday := 1
	tuesday := 2
	windows := []model.WorkWindow{
		{AttendantID: "att-1", Weekday: &monday, StartTime: "09:00"},
		{AttendantID: "att-1", Weekday: &tuesday, StartTime: "10:00"},
		window("11:00", 2, 3),
	}

	slots := testCalculator().AvailableSlots(windows, nil, 30, targetMonday, queryTime)
	if got := startTimes(slots); got != "09:00" {
		t.Errorf("expected slots [09:00], got [%s]", got)
	}
}

func TestAvailableSlots_NoWindowsForWeekday(t *testing.T) {
	windows := []model.WorkWindow{window("09:00", 2, 3, 4)}

	slots := testCalculator().AvailableSlots(windows, nil, 30, targetMonday, queryTime)
	if slots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %v", slots)
	}
}

func TestAvailableSlots_ZeroServiceDurationFallsBack(t *testing.T) {
	windows := []model.WorkWindow{window("09:00", 1)}

	slots := testCalculator().AvailableSlots(windows, nil, 0, targetMonday, queryTime)
	if len(slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(slots))
	}
	if slots[0].DurationMin != 30 {
		t.Errorf("expected default duration 30, got %d", slots[0].DurationMin)
	}
}

func TestAvailableSlots_PadsStartTimes(t *testing.T) {
	windows := []model.WorkWindow{window("9:00", 1)}

	slots := testCalculator().AvailableSlots(windows, nil, 30, targetMonday, queryTime)
	if got := startTimes(slots); got != "09:00" {
		t.Errorf("expected padded [09:00], got [%s]", got)
	}
}

func TestBuildCalendar(t *testing.T) {
	attendant := &model.Attendant{
		ID:       "att-1",
		Name:     "Marina",
		Active:   true,
		Weekdays: []int{1, 2, 3, 4, 5, 6},
	}
	windows := []model.WorkWindow{window("09:00", 1, 2, 3, 4, 5, 6)}

	var fetched []string
	bookingsFor := func(date time.Time) ([]model.Booking, error) {
		iso := date.Format("2006-01-02")
		fetched = append(fetched, iso)
		if iso == "2024-08-06" {
			return []model.Booking{booking("09:00", 30)}, nil
		}
		return nil, nil
	}

	start := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC)

	summaries, err := testCalculator().BuildCalendar(attendant, windows, bookingsFor, 30, start, end, queryTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 10 {
		t.Fatalf("expected 10 days, got %d", len(summaries))
	}

	// 2024-08-11 is the Sunday in range: not a workday, no fetch, no slots.
	sunday := summaries[6]
	if sunday.ISODate != "2024-08-11" {
		t.Fatalf("expected 2024-08-11 at index 6, got %s", sunday.ISODate)
	}
	if sunday.Available || sunday.SlotCount != 0 {
		t.Errorf("expected Sunday unavailable with zero slots, got available=%v count=%d", sunday.Available, sunday.SlotCount)
	}
	for _, iso := range fetched {
		if iso == "2024-08-11" {
			t.Error("expected no booking fetch for a non working day")
		}
	}

	// The fully booked Tuesday stays a workday but shows nothing open.
	tuesday := summaries[1]
	if tuesday.Available || tuesday.SlotCount != 0 {
		t.Errorf("expected booked-out day unavailable, got available=%v count=%d", tuesday.Available, tuesday.SlotCount)
	}

	monday := summaries[0]
	if !monday.Available || monday.SlotCount != 1 {
		t.Errorf("expected Monday with one slot, got available=%v count=%d", monday.Available, monday.SlotCount)
	}
	if monday.WeekdayName != "segunda-feira" || monday.Display != "05/08/2024" {
		t.Errorf("unexpected summary labels: %+v", monday)
	}
}

func TestBuildCalendar_ClampsToAdvanceLimit(t *testing.T) {
	attendant := &model.Attendant{ID: "att-1", Name: "Marina", Weekdays: []int{1}}
	calc := NewCalculator(30*time.Minute, 30, 5)

	start := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)

	summaries, err := calc.BuildCalendar(attendant, nil, func(time.Time) ([]model.Booking, error) {
		return nil, nil
	}, 30, start, end, queryTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 6 {
		t.Fatalf("expected 6 days, got %d", len(summaries))
	}
	if last := summaries[len(summaries)-1].ISODate; last != "2024-08-10" {
		t.Errorf("expected range clamped at 2024-08-10, got %s", last)
	}
}

func TestBuildCalendar_FetchErrorStops(t *testing.T) {
	attendant := &model.Attendant{ID: "att-1", Name: "Marina", Weekdays: []int{1}}

	fetchErr := errors.New("store unreachable")
	_, err := testCalculator().BuildCalendar(attendant, nil, func(time.Time) ([]model.Booking, error) {
		return nil, fetchErr
	}, 30, targetMonday, targetMonday, queryTime)

	if !errors.Is(err, fetchErr) {
		t.Errorf("expected fetch error to propagate, got %v", err)
	}
}

func TestBuildCalendar_EmptyRange(t *testing.T) {
	attendant := &model.Attendant{ID: "att-1", Name: "Marina", Weekdays: []int{1}}

	start := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC)

	summaries, err := testCalculator().BuildCalendar(attendant, nil, func(time.Time) ([]model.Booking, error) {
		return nil, nil
	}, 30, start, end, queryTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no days, got %d", len(summaries))
	}
}

func TestWindowsFor_Union(t *testing.T) {
	legacyMonday := 1
	windows := []model.WorkWindow{
		window("09:00", 1, 2),
		{AttendantID: "att-1", Weekday: &legacyMonday, StartTime: "14:00"},
		window("10:00", 3),
	}

	matched := WindowsFor(windows, time.Monday)
	if len(matched) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(matched))
	}
	if matched[0].StartTime != "09:00" || matched[1].StartTime != "14:00" {
		t.Errorf("unexpected windows: %v", matched)
	}
}

func TestActiveBookings(t *testing.T) {
	bookings := []model.Booking{
		booking("09:00", 30),
		{Date: "2024-08-05", StartTime: "10:00", Status: model.BookingStatusCancelled},
		booking("11:00", 30),
	}

	active := ActiveBookings(bookings)
	if len(active) != 2 {
		t.Fatalf("expected 2 active bookings, got %d", len(active))
	}
	for _, b := range active {
		if b.IsCancelled() {
			t.Errorf("cancelled booking survived the filter: %+v", b)
		}
	}
}

package model

import (
	"testing"
	"time"
)

func TestAttendant_WorksOn(t *testing.T) {
	att := &Attendant{
		Name:     "Ana",
		Weekdays: []int{1, 3, 5},
	}

	tests := []struct {
		name string
		day  time.Weekday
		want bool
	}{
		{name: "monday in set", day: time.Monday, want: true},
		{name: "wednesday in set", day: time.Wednesday, want: true},
		{name: "sunday not in set", day: time.Sunday, want: false},
		{name: "saturday not in set", day: time.Saturday, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := att.WorksOn(tt.day); got != tt.want {
				t.Errorf("WorksOn(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestAttendant_WorksOn_EmptySet(t *testing.T) {
	att := &Attendant{Name: "Ana"}

	for d := time.Sunday; d <= time.Saturday; d++ {
		if att.WorksOn(d) {
			t.Errorf("WorksOn(%v) = true for attendant with no weekdays", d)
		}
	}
}

func TestWorkWindow_AppliesTo(t *testing.T) {
	legacyTuesday := 2

	tests := []struct {
		name   string
		window WorkWindow
		day    time.Weekday
		want   bool
	}{
		{
			name:   "multi-day list match",
			window: WorkWindow{Weekdays: []int{1, 2, 3}},
			day:    time.Tuesday,
			want:   true,
		},
		{
			name:   "multi-day list miss",
			window: WorkWindow{Weekdays: []int{1, 2, 3}},
			day:    time.Saturday,
			want:   false,
		},
		{
			name:   "legacy single-day match",
			window: WorkWindow{Weekday: &legacyTuesday},
			day:    time.Tuesday,
			want:   true,
		},
		{
			name:   "legacy single-day miss",
			window: WorkWindow{Weekday: &legacyTuesday},
			day:    time.Monday,
			want:   false,
		},
		{
			name:   "union of both fields",
			window: WorkWindow{Weekdays: []int{5}, Weekday: &legacyTuesday},
			day:    time.Friday,
			want:   true,
		},
		{
			name:   "union also covers legacy field",
			window: WorkWindow{Weekdays: []int{5}, Weekday: &legacyTuesday},
			day:    time.Tuesday,
			want:   true,
		},
		{
			name:   "neither field set",
			window: WorkWindow{},
			day:    time.Monday,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.AppliesTo(tt.day); got != tt.want {
				t.Errorf("AppliesTo(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestBooking_Duration(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    int
	}{
		{
			name:    "explicit duration",
			booking: Booking{DurationMin: 45},
			want:    45,
		},
		{
			name:    "missing duration falls back",
			booking: Booking{},
			want:    30,
		},
		{
			name:    "zero duration falls back",
			booking: Booking{DurationMin: 0},
			want:    30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.booking.Duration(30); got != tt.want {
				t.Errorf("Duration(30) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBooking_IsCancelled(t *testing.T) {
	confirmed := Booking{Status: BookingStatusConfirmed}
	cancelled := Booking{Status: BookingStatusCancelled}

	if confirmed.IsCancelled() {
		t.Errorf("confirmed booking reported as cancelled")
	}
	if !cancelled.IsCancelled() {
		t.Errorf("cancelled booking not reported as cancelled")
	}
}

func TestConversation_PendingCancellation(t *testing.T) {
	now := time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)
	conv := &Conversation{ClientPhone: "+5511987654321"}

	if conv.PendingCancellation != nil {
		t.Fatalf("new conversation should have no pending cancellation")
	}

	conv.OfferCancellation([]string{"bk-1", "bk-2"}, now)

	if conv.PendingCancellation == nil {
		t.Fatalf("OfferCancellation did not record pending state")
	}
	if len(conv.PendingCancellation.BookingIDs) != 2 {
		t.Errorf("pending BookingIDs = %v, want 2 entries", conv.PendingCancellation.BookingIDs)
	}
	if !conv.PendingCancellation.OfferedAt.Equal(now) {
		t.Errorf("OfferedAt = %v, want %v", conv.PendingCancellation.OfferedAt, now)
	}

	conv.ClearCancellation()
	if conv.PendingCancellation != nil {
		t.Errorf("ClearCancellation did not clear pending state")
	}
}

func TestConversation_Append(t *testing.T) {
	now := time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC)
	conv := &Conversation{ClientPhone: "+5511987654321"}

	conv.Append(RoleUser, "quero marcar um horário", now)
	conv.Append(RoleAssistant, "claro, para qual dia?", now.Add(time.Second))

	if len(conv.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(conv.History))
	}
	if conv.History[0].Role != RoleUser {
		t.Errorf("first message role = %q, want %q", conv.History[0].Role, RoleUser)
	}
	if conv.History[1].Role != RoleAssistant {
		t.Errorf("second message role = %q, want %q", conv.History[1].Role, RoleAssistant)
	}
}

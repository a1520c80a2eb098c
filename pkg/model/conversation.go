package model

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// PendingCancellation holds the booking candidates offered to a client whose
// cancellation request was ambiguous, so the follow-up reply can be resolved
// against exactly what they were shown.
type PendingCancellation struct {
	BookingIDs []string
	OfferedAt  time.Time
}

// Conversation is the per-client threading context. Each conversation owns
// its own pending-cancellation state; nothing is shared across clients.
type Conversation struct {
	ID                  string
	ClientPhone         string
	AttendantID         string
	History             []Message
	PendingCancellation *PendingCancellation
}

func (c *Conversation) Append(role, text string, at time.Time) {
	c.History = append(c.History, Message{Role: role, Text: text, At: at})
}

func (c *Conversation) OfferCancellation(bookingIDs []string, at time.Time) {
	c.PendingCancellation = &PendingCancellation{
		BookingIDs: bookingIDs,
		OfferedAt:  at,
	}
}

func (c *Conversation) ClearCancellation() {
	c.PendingCancellation = nil
}

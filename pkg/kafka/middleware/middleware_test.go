package kafka_middleware

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"zapagenda/pkg/kafka"
)

func testMessage() kafka.Message {
	msg := kafka.NewMessage().
		WithKey("+5511987654321").
		WithRawValue([]byte(`{}`)).
		WithEventType("booking.created").
		Build()
	msg.Topic = "bookings"
	return msg
}

func TestLoggingProducerMiddleware(t *testing.T) {
	prev := log.Writer()
	defer log.SetOutput(prev)

	tests := []struct {
		name    string
		nextErr error
		want    string
	}{
		{
			name:    "success logs the publish",
			nextErr: nil,
			want:    "Successfully published message",
		},
		{
			name:    "failure logs the error",
			nextErr: errors.New("broker unreachable"),
			want:    "Failed to publish message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log.SetOutput(&buf)

			mw := LoggingProducerMiddleware()

			called := false
			err := mw(context.Background(), testMessage(), func(ctx context.Context, msg kafka.Message) error {
				called = true
				if msg.Topic != "bookings" {
					t.Errorf("expected message passed through with topic bookings, got %q", msg.Topic)
				}
				return tt.nextErr
			})

			if !called {
				t.Fatal("expected middleware to call next")
			}
			if err != tt.nextErr {
				t.Errorf("expected error %v, got %v", tt.nextErr, err)
			}

			out := buf.String()
			if !strings.Contains(out, "Publishing message") {
				t.Errorf("expected output to log the attempt, got %q", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected output to contain %q, got %q", tt.want, out)
			}
			if !strings.Contains(out, "event_type=booking.created") {
				t.Errorf("expected output to carry the event type, got %q", out)
			}
		})
	}
}

func TestMetricsProducerMiddleware(t *testing.T) {
	metrics := GetMetrics()
	metrics.Reset()
	defer metrics.Reset()

	mw := MetricsProducerMiddleware()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := mw(ctx, testMessage(), func(ctx context.Context, msg kafka.Message) error {
			time.Sleep(time.Millisecond)
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	failure := errors.New("broker unreachable")
	err := mw(ctx, testMessage(), func(ctx context.Context, msg kafka.Message) error {
		return failure
	})
	if err != failure {
		t.Fatalf("expected middleware to return the publish error, got %v", err)
	}

	if got := atomic.LoadInt64(&metrics.MessagesPublished); got != 3 {
		t.Errorf("expected 3 published messages, got %d", got)
	}
	if got := atomic.LoadInt64(&metrics.MessagesPublishedFailed); got != 1 {
		t.Errorf("expected 1 failed message, got %d", got)
	}
	if avg := metrics.GetAvgPublishDuration(); avg <= 0 {
		t.Errorf("expected a positive average publish duration, got %v", avg)
	}
	if rate := metrics.GetPublishRate(time.Second); rate != 3 {
		t.Errorf("expected publish rate of 3 per second, got %v", rate)
	}
}

func TestMetricsAvgDurationWithoutPublishes(t *testing.T) {
	metrics := GetMetrics()
	metrics.Reset()

	if got := metrics.GetAvgPublishDuration(); got != 0 {
		t.Errorf("expected zero average without published messages, got %v", got)
	}
}

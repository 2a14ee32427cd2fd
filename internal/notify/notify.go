// Package notify delivers post-commit ledger events to downstream consumers.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	specVersion = "1.0"
	contentType = "application/json"
)

// Event is a CloudEvents-shaped envelope. Data is marshalled as JSON.
type Event struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Source  string    `json:"source"`
	Time    time.Time `json:"time"`
	Subject string    `json:"subject"`
	Data    any       `json:"data"`
}

func NewEvent(eventType, source, subject string, data any) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    eventType,
		Source:  source,
		Time:    time.Now().UTC(),
		Subject: subject,
		Data:    data,
	}
}

type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

// Func adapts a plain function to Notifier.
type Func func(ctx context.Context, event Event) error

func (f Func) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Discard drops every event.
type Discard struct{}

func (Discard) Notify(context.Context, Event) error { return nil }

// LogNotifier writes events to a structured logger. Used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event Event) error {
	n.logger.InfoContext(ctx, "ledger event",
		"id", event.ID,
		"type", event.Type,
		"subject", event.Subject,
		"data", event.Data,
	)

	return nil
}

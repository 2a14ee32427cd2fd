package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu    sync.Mutex
	msgs  []kafka.Message
	calls int
	err   error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls++
	if w.err != nil {
		return w.err
	}

	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}

	return ""
}

func TestKafkaNotifier_Notify(t *testing.T) {
	w := &fakeWriter{}
	n := newKafkaNotifier(w, "stockroom.ledger.events", discardLogger())

	event := NewEvent("ledger.transaction.completed", "stockroom/ledger", "REC-202503140001",
		map[string]string{"type": "RECEIVE"})

	require.NoError(t, n.Notify(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "REC-202503140001", string(msg.Key))
	assert.Equal(t, "1.0", header(msg, "ce-specversion"))
	assert.Equal(t, "ledger.transaction.completed", header(msg, "ce-type"))
	assert.Equal(t, "stockroom/ledger", header(msg, "ce-source"))
	assert.Equal(t, event.ID, header(msg, "ce-id"))
	assert.Equal(t, "application/json", header(msg, "content-type"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded["id"])
	assert.Equal(t, map[string]any{"type": "RECEIVE"}, decoded["data"])
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	n := newKafkaNotifier(w, "events", discardLogger())

	err := n.Notify(context.Background(), NewEvent("t", "s", "x", nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestKafkaNotifier_BreakerOpens(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	n := newKafkaNotifier(w, "events", discardLogger())

	for range 5 {
		require.Error(t, n.Notify(context.Background(), NewEvent("t", "s", "x", nil)))
	}

	assert.Equal(t, gobreaker.StateOpen, n.State())
	assert.False(t, n.Available())

	err := n.Notify(context.Background(), NewEvent("t", "s", "x", nil))
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 5, w.calls, "open breaker must not reach the writer")
}

func TestFunc(t *testing.T) {
	var got Event

	n := Func(func(_ context.Context, e Event) error {
		got = e
		return nil
	})

	e := NewEvent("t", "s", "subj", 1)
	require.NoError(t, n.Notify(context.Background(), e))
	assert.Equal(t, e, got)
	require.NoError(t, Discard{}.Notify(context.Background(), e))
	require.NoError(t, NewLogNotifier(discardLogger()).Notify(context.Background(), e))
}

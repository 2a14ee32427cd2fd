package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

var ErrUnavailable = errors.New("event broker unavailable")

type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	RequiredAcks int
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes events to a single topic behind a circuit breaker,
// so a dead broker costs one fast failure per event instead of a timeout.
type KafkaNotifier struct {
	writer  messageWriter
	topic   string
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

func NewKafkaNotifier(cfg KafkaConfig, logger *slog.Logger) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
	}

	return newKafkaNotifier(w, cfg.Topic, logger)
}

func newKafkaNotifier(w messageWriter, topic string, logger *slog.Logger) *KafkaNotifier {
	settings := gobreaker.Settings{
		Name:        "kafka-" + topic,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= 5 {
				return true
			}

			if counts.Requests >= 10 {
				return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.5
			}

			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &KafkaNotifier{
		writer:  w,
		topic:   topic,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

func (n *KafkaNotifier) Notify(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Subject),
		Value: data,
		Headers: []kafka.Header{
			{Key: "ce-specversion", Value: []byte(specVersion)},
			{Key: "ce-type", Value: []byte(event.Type)},
			{Key: "ce-source", Value: []byte(event.Source)},
			{Key: "ce-id", Value: []byte(event.ID)},
			{Key: "ce-time", Value: []byte(event.Time.Format(time.RFC3339))},
			{Key: "content-type", Value: []byte(contentType)},
		},
		Time: event.Time,
	}

	_, err = n.breaker.Execute(func() (interface{}, error) {
		return nil, n.writer.WriteMessages(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err != nil {
		return fmt.Errorf("publishing to %s: %w", n.topic, err)
	}

	return nil
}

func (n *KafkaNotifier) State() gobreaker.State {
	return n.breaker.State()
}

// Available reports whether events are currently let through to the broker.
func (n *KafkaNotifier) Available() bool {
	return n.breaker.State() != gobreaker.StateOpen
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

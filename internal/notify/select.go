package notify

import (
	"io"
	"log/slog"
)

// Select returns a KafkaNotifier when brokers are configured and fallback
// otherwise.
func Select(cfg KafkaConfig, fallback Notifier, logger *slog.Logger) Notifier {
	if len(cfg.Brokers) == 0 {
		return fallback
	}

	return NewKafkaNotifier(cfg, logger)
}

// Close releases broker connections held by n, if any.
func Close(n Notifier) error {
	if c, ok := n.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

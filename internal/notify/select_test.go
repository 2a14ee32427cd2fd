package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	logger := discardLogger()

	t.Run("NoBrokersUsesFallback", func(t *testing.T) {
		n := Select(KafkaConfig{Topic: "stockroom.ledger.events"}, Discard{}, logger)

		assert.Equal(t, Discard{}, n)
		assert.NoError(t, Close(n))
	})

	t.Run("BrokersUseKafka", func(t *testing.T) {
		n := Select(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "stockroom.ledger.events"}, Discard{}, logger)

		kn, ok := n.(*KafkaNotifier)
		require.True(t, ok)
		assert.True(t, kn.Available())
		assert.NoError(t, Close(n))
	})
}

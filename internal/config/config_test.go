package config_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/stockroom/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "stockroom.ledger.events", cfg.Kafka.Topic)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.True(t, cfg.Ledger.WriteOffThreshold.IsZero())
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "inventory")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LEDGER_WRITE_OFF_THRESHOLD", "5.5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, decimal.RequireFromString("5.5").Equal(cfg.Ledger.WriteOffThreshold))
	assert.Equal(t, "postgres://postgres:@localhost:5432/inventory?sslmode=disable", cfg.ConnectionString())

	kc := cfg.KafkaConfig()
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, kc.Brokers)
	assert.Equal(t, "stockroom.ledger.events", kc.Topic)
	assert.Equal(t, -1, kc.RequiredAcks)
}

func TestLoad_InvalidThreshold(t *testing.T) {
	t.Setenv("LEDGER_WRITE_OFF_THRESHOLD", "five")

	_, err := config.Load()
	assert.Error(t, err)
}

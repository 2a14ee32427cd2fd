package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/stockroom/internal/notify"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Stockroom"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"stockroom"`
	}

	Server struct {
		Timeout     time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		CORSOrigins []string      `envconfig:"SERVER_CORS_ORIGINS" default:"*"`
	}

	Auth struct {
		// Empty disables token parsing; the actor is then taken from X-Actor-ID.
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}

	Kafka struct {
		Brokers      []string      `envconfig:"KAFKA_BROKERS"`
		Topic        string        `envconfig:"KAFKA_TOPIC" default:"stockroom.ledger.events"`
		BatchTimeout time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"10ms"`
		RequiredAcks int           `envconfig:"KAFKA_REQUIRED_ACKS" default:"-1"`
		SendTimeout  time.Duration `envconfig:"KAFKA_SEND_TIMEOUT" default:"5s"`
	}

	Ledger struct {
		WriteOffThreshold decimal.Decimal `envconfig:"LEDGER_WRITE_OFF_THRESHOLD" default:"0"`
	}

	TUI struct {
		// Actor recorded on terminal entries. Falls back to $USER.
		Actor string `envconfig:"TUI_ACTOR"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) KafkaConfig() notify.KafkaConfig {
	return notify.KafkaConfig{
		Brokers:      c.Kafka.Brokers,
		Topic:        c.Kafka.Topic,
		BatchTimeout: c.Kafka.BatchTimeout,
		RequiredAcks: c.Kafka.RequiredAcks,
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

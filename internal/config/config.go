package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Atelier"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"atelier"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	ERP struct {
		BaseURL string        `envconfig:"ERP_BASE_URL"`
		Pin     string        `envconfig:"ERP_PIN"`
		Timeout time.Duration `envconfig:"ERP_TIMEOUT" default:"45s"`
	}

	Geocoding struct {
		APIKey string `envconfig:"GEOCODING_API_KEY"`
	}

	Kafka struct {
		Brokers string `envconfig:"KAFKA_BROKERS"`
		Topic   string `envconfig:"KAFKA_TOPIC" default:"atelier.updates"`
	}

	Sync struct {
		CheckInterval time.Duration `envconfig:"SYNC_CHECK_INTERVAL" default:"1h"`
		StaleAfter    time.Duration `envconfig:"SYNC_STALE_AFTER" default:"1h"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

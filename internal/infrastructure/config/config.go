package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Auth  AuthConfig

	// EventWorkers is the number of sharded stay-event workers.
	EventWorkers int `env:"EVENT_WORKERS, default=8"`
	// BookingLockTTL bounds how long a per-room booking lock may be held.
	BookingLockTTL time.Duration `env:"BOOKING_LOCK_TTL, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hotel_inventory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AuthConfig struct {
	// TokenTTL is the JWT lifetime.
	TokenTTL time.Duration `env:"AUTH_TOKEN_TTL, default=8h"`
	// MaxFailedAttempts blocks an account after this many wrong passwords.
	MaxFailedAttempts int `env:"AUTH_MAX_FAILED_ATTEMPTS, default=3"`
	// InactivityDays blocks a non-administrator account that has not logged
	// in for this many days.
	InactivityDays int `env:"AUTH_INACTIVITY_DAYS, default=30"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// JWTConfig is loaded once at startup and handed to the token service
// constructor; request-handling code never reads it from the environment.
type JWTConfig struct {
	Key             string `env:"JWT_KEY, required"`
	Issuer          string `env:"JWT_ISSUER,   default=employee-records"`
	Audience        string `env:"JWT_AUDIENCE, default=employee-records-clients"`
	DurationMinutes int    `env:"JWT_DURATION_MINUTES, default=60"`
}

// Duration returns the configured token lifetime.
func (c JWTConfig) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=employee_records"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	// TokenTTLMinutes is the session token validity window.
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES, default=30"`
	LogLevel        string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Auth  AuthClientConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=waste_mgmt"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// AuthClientConfig configures the order service's remote token relay.
type AuthClientConfig struct {
	BaseURL         string        `env:"AUTH_SERVICE_URL,     default=http://backend-auth:8000"`
	Timeout         time.Duration `env:"AUTH_SERVICE_TIMEOUT, default=5s"`
	VerdictCacheTTL time.Duration `env:"AUTH_VERDICT_TTL,     default=60s"`
}

// TokenTTL returns the configured token validity as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

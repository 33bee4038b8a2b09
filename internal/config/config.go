package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the Gift API.
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Metrics MetricsConfig
	Client  ClientConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthConfig groups authentication-related settings.
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// ClientConfig parameterizes the API client used by the UI pages.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("GIFT_API_HOST", "0.0.0.0"),
			Port:         getInt("GIFT_API_PORT", 8080),
			ReadTimeout:  getDuration("GIFT_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("GIFT_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("GIFT_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Auth: loadAuthConfig(),
		Metrics: MetricsConfig{
			PrometheusPath: getString("GIFT_METRICS_PATH", "/metrics"),
		},
		Client: ClientConfig{
			BaseURL: getString("GIFT_CLIENT_BASE_URL", "http://localhost:8080/api"),
			Timeout: getDuration("GIFT_CLIENT_TIMEOUT", 10*time.Second),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func loadAuthConfig() AuthConfig {
	cost := getInt("GIFT_AUTH_BCRYPT_COST", 10)
	if cost < 4 || cost > 31 {
		cost = 10
	}

	return AuthConfig{
		JWTSecret:  strings.TrimSpace(getString("GIFT_JWT_SECRET", "change-me-to-a-32-byte-secret")),
		TokenTTL:   getDuration("GIFT_AUTH_TOKEN_TTL", 24*time.Hour),
		BcryptCost: cost,
	}
}

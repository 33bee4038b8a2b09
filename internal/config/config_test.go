package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "/metrics", cfg.Metrics.PrometheusPath)
	assert.Equal(t, "http://localhost:8080/api", cfg.Client.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GIFT_API_HOST", "127.0.0.1")
	t.Setenv("GIFT_API_PORT", "9090")
	t.Setenv("GIFT_JWT_SECRET", "  padded-secret  ")
	t.Setenv("GIFT_AUTH_TOKEN_TTL", "30m")
	t.Setenv("GIFT_AUTH_BCRYPT_COST", "12")
	t.Setenv("GIFT_CLIENT_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Address())
	assert.Equal(t, "padded-secret", cfg.Auth.JWTSecret, "secret must be trimmed")
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
}

func TestLoadBcryptCostClamp(t *testing.T) {
	t.Setenv("GIFT_AUTH_BCRYPT_COST", "99")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)

	t.Setenv("GIFT_AUTH_BCRYPT_COST", "1")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("GIFT_API_PORT", "not-a-port")
	t.Setenv("GIFT_AUTH_TOKEN_TTL", "yesterday")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

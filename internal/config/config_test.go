package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:      "development",
		DatabaseName:     "lido_club",
		JWTSecret:        "secret",
		RealtimeBackend:  "memory",
		ChatHistoryLimit: 200,
		TimeZone:         "Europe/Copenhagen",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, validate(validConfig()))
	})

	t.Run("default JWT secret rejected in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, validate(cfg))
	})

	t.Run("redis backend requires address", func(t *testing.T) {
		cfg := validConfig()
		cfg.RealtimeBackend = "redis"
		cfg.RedisAddr = ""
		assert.Error(t, validate(cfg))
	})

	t.Run("unknown realtime backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.RealtimeBackend = "kafka"
		assert.Error(t, validate(cfg))
	})

	t.Run("history limit must be positive", func(t *testing.T) {
		cfg := validConfig()
		cfg.ChatHistoryLimit = 0
		assert.Error(t, validate(cfg))
	})

	t.Run("bad time zone", func(t *testing.T) {
		cfg := validConfig()
		cfg.TimeZone = "Nowhere/Town"
		assert.Error(t, validate(cfg))
	})
}

func TestBuildDatabaseURL(t *testing.T) {
	cfg := &Config{
		DatabaseUser:     "u",
		DatabasePassword: "p",
		DatabaseHost:     "db",
		DatabasePort:     "5433",
		DatabaseName:     "club",
		DatabaseSSLMode:  "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5433/club?sslmode=disable", buildDatabaseURL(cfg))
}

func TestLocation(t *testing.T) {
	cfg := validConfig()
	loc := cfg.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "Europe/Copenhagen", loc.String())

	cfg.TimeZone = "bogus"
	assert.Equal(t, "UTC", cfg.Location().String())
}

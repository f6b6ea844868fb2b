package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shield")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "")

	cfg := Load()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.Service.Port)
	assert.Equal(t, DefaultJWTSecret, cfg.Auth.JWTSecret)
	assert.True(t, cfg.UsesDefaultSecret())
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, 5*time.Second, cfg.GetReadinessDrainDelayDuration())
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeoutDuration())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db/shield")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_SEED", "false")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.UsesDefaultSecret())
	assert.Equal(t, "9000", cfg.Service.Port)
	assert.False(t, cfg.Database.Seed)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.GetShutdownTimeoutDuration())
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := &Config{
		Service:  ServiceConfig{Port: ""},
		Database: DatabaseConfig{MaxConns: 0},
		Logging:  LoggingConfig{Level: "loud"},
		Tracing:  TracingConfig{SampleRate: 2},
		Shutdown: ShutdownConfig{ReadinessDrainDelay: "soon", Timeout: "1s"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"PORT", "DATABASE_URL", "DB_MAX_CONNS", "JWT_SECRET", "LOG_LEVEL", "OTEL_SAMPLE_RATE", "READINESS_DRAIN_DELAY"} {
		assert.Contains(t, err.Error(), want)
	}
}

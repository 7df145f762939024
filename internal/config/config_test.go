package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPasetoKey = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "http://localhost:8080", cfg.Server.PublicURL)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.TrustedOrigins)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "threaddit", cfg.Database.DBName)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PASETO_KEY", testPasetoKey)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PUBLIC_URL", "https://threaddit.example.com")
	t.Setenv("TOKEN_DURATION", "3600")
	t.Setenv("TRUSTED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "https://threaddit.example.com", cfg.Server.PublicURL)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_RejectsBadPasetoKey(t *testing.T) {
	t.Setenv("PASETO_KEY", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "threaddit",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db port=5432 user=app password=secret dbname=threaddit sslmode=require",
		cfg.ConnectionString(),
	)
}

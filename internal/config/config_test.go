package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "PORT", "STORAGE", "JWT_SECRET", "JWT_EXPIRES_IN",
		"DEFAULT_AMOUNT", "LOG_LEVEL", "CATALOG_PATH", "TELEGRAM_BOT_TOKEN", "WEBHOOK_URL"} {
		t.Setenv(key, "")
	}

	cfg := MustLoad()
	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 100.0, cfg.DefaultAmount)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.DBConn)
	assert.Empty(t, cfg.CatalogPath)
}

func TestMustLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE", "Memory")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("DEFAULT_AMOUNT", "250")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CATALOG_PATH", "/etc/cardhawk/cards.json")

	cfg := MustLoad()
	assert.Equal(t, ":9000", cfg.ServerPort)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, 250.0, cfg.DefaultAmount)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/etc/cardhawk/cards.json", cfg.CatalogPath)
}

func TestMustLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "forever")
	t.Setenv("DEFAULT_AMOUNT", "-5")
	t.Setenv("LOG_LEVEL", "loud")

	cfg := MustLoad()
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 100.0, cfg.DefaultAmount)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statline/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STATLINE_SEED", "STATLINE_COUNT", "CATALOG_FILE", "BATCH_LIMIT",
		"PORT", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT", "EXPORT_DIR", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Generation.Seed)
	assert.Equal(t, 250, cfg.Generation.Count)
	assert.Empty(t, cfg.Generation.CatalogFile)
	assert.Equal(t, 4, cfg.Generation.BatchLimit)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "./exports", cfg.Paths.ExportDir)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STATLINE_SEED", "-17")
	t.Setenv("STATLINE_COUNT", "1000")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://stats.example.com")
	t.Setenv("REQUEST_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(-17), cfg.Generation.Seed)
	assert.Equal(t, 1000, cfg.Generation.Count)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000", "https://stats.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"negative count", "STATLINE_COUNT", "-1"},
		{"count too large", "STATLINE_COUNT", "100001"},
		{"port not a number", "PORT", "http"},
		{"port out of range", "PORT", "70000"},
		{"zero batch limit", "BATCH_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

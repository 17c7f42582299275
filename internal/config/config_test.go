package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "PORTFOLIO_CONTENT", "PORTFOLIO_ANALYTICS", "PORTFOLIO_DB", "PORTFOLIO_RETENTION", "SMTP_HOST"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.Analytics.Enabled)
	assert.Equal(t, "portfolio.db", cfg.Analytics.DBPath)
	assert.Equal(t, 8760*time.Hour, cfg.Analytics.Retention)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Empty(t, cfg.ContentPath)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PORTFOLIO_CONTENT", "content.yml")
	t.Setenv("PORTFOLIO_ANALYTICS", "false")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("SMTP_USER", "me@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "content.yml", cfg.ContentPath)
	assert.False(t, cfg.Analytics.Enabled)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "me@example.com", cfg.SMTP.User)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := Load()
	require.ErrorIs(t, err, errInvalidConfig)
	assert.Contains(t, err.Error(), "PORT")

	t.Setenv("PORT", "70000")
	_, err = Load()
	require.ErrorIs(t, err, errInvalidConfig)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("PORTFOLIO_RETENTION", "forever")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate_Retention(t *testing.T) {
	cfg := Config{Port: "8080", GinMode: "release", Analytics: AnalyticsConfig{Enabled: true, DBPath: "x.db"}}
	require.ErrorIs(t, cfg.Validate(), errInvalidConfig)

	cfg.Analytics.Enabled = false
	assert.NoError(t, cfg.Validate())
}

func TestValidate_GinMode(t *testing.T) {
	cfg := Config{Port: "8080", GinMode: "verbose"}
	err := cfg.Validate()
	require.ErrorIs(t, err, errInvalidConfig)
	assert.Contains(t, err.Error(), "GIN_MODE")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitstats/internal/stats"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"ADDR", "DATABASE_URL", "APP_TZ", "WEEK_START", "OVERVIEW_DAYS", "WEIGHT_TREND_DAYS", "OIDC_ISSUER", "OIDC_CLIENT_ID"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
	assert.Equal(t, 7, cfg.OverviewDays)
	assert.Equal(t, 30, cfg.WeightTrendDays)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.OIDCEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_TZ", "UTC")
	t.Setenv("WEEK_START", "Monday")
	t.Setenv("OVERVIEW_DAYS", "14")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("OIDC_ISSUER", "https://id.example.com")
	t.Setenv("OIDC_CLIENT_ID", "fitstats")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, time.Monday, cfg.WeekStart)
	assert.Equal(t, 14, cfg.OverviewDays)
	assert.True(t, cfg.LogJSON)
	assert.True(t, cfg.OIDCEnabled())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"APP_TZ", "Mars/Olympus"},
		{"WEEK_START", "someday"},
		{"OVERVIEW_DAYS", "0"},
		{"WEIGHT_TREND_DAYS", "many"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
		})
	}

	t.Run("days error is invalid range", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("OVERVIEW_DAYS", "-3")
		_, err := Load()
		assert.ErrorIs(t, err, stats.ErrInvalidRange)
	})
}

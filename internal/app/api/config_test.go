package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("HISTORY_LIMIT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, defaultHistoryLimit, cfg.HistoryLimit)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/wheels")
	t.Setenv("HISTORY_LIMIT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "postgres://localhost/wheels", cfg.PostgresDSN)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestLoadConfig_RejectsBadHistoryLimit(t *testing.T) {
	for _, raw := range []string{"0", "-3", "many"} {
		t.Setenv("HISTORY_LIMIT", raw)
		_, err := LoadConfig()
		require.Error(t, err, "HISTORY_LIMIT=%s", raw)
	}
}

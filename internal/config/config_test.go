package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./dev.db", cfg.DBPath)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.IsDev())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PREC_ENV", "prod")
	t.Setenv("PREC_ADDR", ":9090")
	t.Setenv("PREC_DB_PATH", "/tmp/prec.db")
	t.Setenv("PREC_METRICS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/prec.db", cfg.DBPath)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsDev())
}

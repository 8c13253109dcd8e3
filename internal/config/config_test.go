package config_test

import (
	"drills/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel, "debug entries stay off the console unless asked for")
	require.False(t, cfg.Console.Quiet)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	require.False(t, cfg.HTTP.Pprof)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
logLevel: warn
console:
  quiet: true
http:
  addr: ":9090"
  requestTimeout: 2s
  pprof: true
`), 0o600))

	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.True(t, cfg.Console.Quiet)
	require.Equal(t, ":7070", cfg.HTTP.Addr, "environment overrides the file")
	require.Equal(t, 2*time.Second, cfg.HTTP.RequestTimeout)
	require.True(t, cfg.HTTP.Pprof)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath, "unset fields keep their defaults")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http: [not, a, map"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

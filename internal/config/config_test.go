package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "storyline.db", cfg.DB.Path)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "UTC", cfg.Report.Timezone)
	require.False(t, cfg.Auth.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORYLINE_SERVER_HOST", "127.0.0.1")
	t.Setenv("STORYLINE_SERVER_PORT", "9090")
	t.Setenv("STORYLINE_DB_PATH", "/tmp/test.db")
	t.Setenv("STORYLINE_LOG_LEVEL", "debug")
	t.Setenv("STORYLINE_TRANSPORT_MODE", "http")
	t.Setenv("STORYLINE_REPORT_TIMEZONE", "Europe/Berlin")
	t.Setenv("STORYLINE_AUTH_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Server.Host)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "Europe/Berlin", cfg.Report.Timezone)
	require.True(t, cfg.Auth.Enabled)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("STORYLINE_SERVER_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_YAMLFileWithEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 7070\nreport:\n  timezone: America/New_York\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("STORYLINE_CONFIG_PATH", path)
	t.Setenv("STORYLINE_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	// Env wins over file; file wins over defaults.
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "America/New_York", cfg.Report.Timezone)
}

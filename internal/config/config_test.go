package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TURSO_DATABASE_URL", "VIGOR_TIMEZONE", "VIGOR_LOG_LEVEL", "DEV_MODE"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "America/Sao_Paulo", cfg.Dashboard.Timezone)
	assert.Equal(t, 5, cfg.Dashboard.TopTypes)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Contains(t, cfg.DB.ConnectionString, "vigor.db")
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
connection_string = "libsql://example.turso.io"

[dashboard]
timezone = "Europe/Lisbon"
top_types = 3

[log]
level = "debug"
json = true
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "libsql://example.turso.io", cfg.DB.ConnectionString)
	assert.Equal(t, "Europe/Lisbon", cfg.Dashboard.Timezone)
	assert.Equal(t, 3, cfg.Dashboard.TopTypes)
	assert.True(t, cfg.Log.JSON)

	t.Setenv("VIGOR_TIMEZONE", "UTC")
	t.Setenv("DEV_MODE", "true")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Dashboard.Timezone)
	assert.Equal(t, "file:./local.db", cfg.DB.ConnectionString)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[database\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

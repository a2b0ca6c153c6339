package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walklog.yaml")
	content := "server: https://walks.example.com\ntimeout: 5s\nonline_check_interval: 1m\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := Default()
	require.NoError(t, LoadFile(&cfg, path, true))

	assert.Equal(t, "https://walks.example.com", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultDBPath, cfg.DBPath, "unset keys keep defaults")
}

func TestLoadFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg := Default()
	require.NoError(t, LoadFile(&cfg, path, false))
	assert.Equal(t, Default(), cfg)

	assert.Error(t, LoadFile(&cfg, path, true))
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	cfg := Default()
	assert.Error(t, LoadFile(&cfg, path, true))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "empty server", modify: func(c *Config) { c.ServerURL = "" }},
		{name: "server without scheme", modify: func(c *Config) { c.ServerURL = "localhost:3000" }},
		{name: "empty db", modify: func(c *Config) { c.DBPath = " " }},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }},
		{name: "zero interval", modify: func(c *Config) { c.OnlineCheckInterval = 0 }},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("error")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)
}

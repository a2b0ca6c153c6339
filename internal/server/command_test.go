package server

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/server/config"
)

func recordingRun(got *config.Config) RunFunc {
	return func(ctx context.Context, cfg config.Config, logger *slog.Logger, version string) error {
		*got = cfg
		return nil
	}
}

func TestCommand_ConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":7000"
database_url: from-file.db
jwt_secret: file-secret
log_level: debug
jwt_ttl: 2h
`), 0o600))

	env := map[string]string{
		"DATABASE_URL": "postgres://env/walklog",
		"JWT_SECRET":   "env-secret",
	}

	var got config.Config
	cmd := NewCommand(&bytes.Buffer{}, func(k string) string { return env[k] }, recordingRun(&got), "test")
	cmd.SetArgs([]string{"--config", path, "--addr", ":9000", "--cors-origins", "https://a.example.com,https://b.example.com"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, ":9000", got.Addr, "flag wins over file")
	assert.Equal(t, "postgres://env/walklog", got.DatabaseURL, "env wins over file")
	assert.Equal(t, "env-secret", got.JWTSecret)
	assert.Equal(t, "debug", got.LogLevel, "file wins over default")
	assert.Equal(t, 2*time.Hour, got.JWTTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, got.CORSOrigins)
}

func TestCommand_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		env     map[string]string
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing secret",
			env:     map[string]string{},
			wantErr: "invalid configuration",
		},
		{
			name:    "explicit config file is required",
			env:     map[string]string{"JWT_SECRET": "s"},
			args:    []string{"--config", "absent.yaml"},
			wantErr: "failed to read config file",
		},
		{
			name:    "bad env value",
			env:     map[string]string{"JWT_SECRET": "s", "WALKLOG_BCRYPT_COST": "many"},
			wantErr: "WALKLOG_BCRYPT_COST",
		},
		{
			name:    "bad log level flag",
			env:     map[string]string{"JWT_SECRET": "s"},
			args:    []string{"--log-level", "loud"},
			wantErr: "invalid log level",
		},
		{
			name:    "positional arguments",
			env:     map[string]string{"JWT_SECRET": "s"},
			args:    []string{"serve"},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			run := func(ctx context.Context, cfg config.Config, logger *slog.Logger, version string) error {
				called = true
				return nil
			}

			cmd := NewCommand(&bytes.Buffer{}, func(k string) string { return tt.env[k] }, run, "test")
			cmd.SetArgs(append([]string{}, tt.args...))

			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.False(t, called)
		})
	}
}

func TestCommand_DefaultConfigFileIsOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	var got config.Config
	cmd := NewCommand(&bytes.Buffer{}, func(k string) string {
		if k == "JWT_SECRET" {
			return "s"
		}
		return ""
	}, recordingRun(&got), "test")
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, config.DefaultAddr, got.Addr)
	assert.Equal(t, config.DriverSQLite, got.Driver())
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/client/config"
	clientsync "github.com/iudanet/walklog/internal/client/sync"
)

// recordingBuilder возвращает Builder, запоминающий полученные настройки
func recordingBuilder(t *testing.T, engine *EngineMock, got *config.Config, closed *bool) Builder {
	t.Helper()
	return func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Cli, func() error, error) {
		*got = cfg
		io, _ := newTestIO()
		watcher := &WatcherMock{ProbeFunc: func(ctx context.Context) bool { return false }}
		c := New(io, engine, nil, watcher)
		return c, func() error {
			*closed = true
			return nil
		}, nil
	}
}

func startedEngine() *EngineMock {
	engine := snapshotEngine(clientsync.State{})
	engine.SetOnlineFunc = func(ctx context.Context, online bool) error { return nil }
	engine.StartFunc = func(ctx context.Context) error { return nil }
	return engine
}

func TestApp_configPrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "walklog.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
server: http://from-file:3000
db: from-file.db
timeout: 5s
`), 0o600))

	var (
		got    config.Config
		closed bool
	)
	engine := startedEngine()
	app := NewApp(&bytes.Buffer{}, recordingBuilder(t, engine, &got, &closed), "test")

	err := app.Execute(context.Background(), []string{
		"--config", configPath,
		"--server", "http://from-flag:4000",
		"list",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag:4000", got.ServerURL)
	assert.Equal(t, "from-file.db", got.DBPath)
	assert.Equal(t, 5*time.Second, got.Timeout)
	assert.Equal(t, config.Default().OnlineCheckInterval, got.OnlineCheckInterval)
	assert.Equal(t, got, app.Config())
	assert.Len(t, engine.StartCalls(), 1)

	require.NoError(t, app.Close())
	assert.True(t, closed)
}

func TestApp_missingConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("default path is optional", func(t *testing.T) {
		var (
			got    config.Config
			closed bool
		)
		app := NewApp(&bytes.Buffer{}, recordingBuilder(t, startedEngine(), &got, &closed), "test")

		require.NoError(t, app.Execute(context.Background(), []string{"list"}))
		assert.Equal(t, config.Default().ServerURL, got.ServerURL)
	})

	t.Run("explicit path is required", func(t *testing.T) {
		built := false
		app := NewApp(&bytes.Buffer{}, func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Cli, func() error, error) {
			built = true
			return nil, nil, errors.New("unexpected")
		}, "test")

		err := app.Execute(context.Background(), []string{"--config", "absent.yaml", "list"})
		assert.Error(t, err)
		assert.False(t, built)
	})
}

func TestApp_invalidFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	built := false
	app := NewApp(&bytes.Buffer{}, func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Cli, func() error, error) {
		built = true
		return nil, nil, errors.New("unexpected")
	}, "test")

	err := app.Execute(context.Background(), []string{"--server", "not a url", "list"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.False(t, built)
}

func TestApp_helpSkipsBuilder(t *testing.T) {
	built := false
	app := NewApp(&bytes.Buffer{}, func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Cli, func() error, error) {
		built = true
		return nil, nil, errors.New("unexpected")
	}, "test")

	var out bytes.Buffer
	app.Command().SetOut(&out)

	require.NoError(t, app.Execute(context.Background(), []string{"help"}))
	require.NoError(t, app.Execute(context.Background(), []string{"goal"}))
	assert.False(t, built)
	assert.Contains(t, out.String(), "walklog")
	assert.NoError(t, app.Close())
}

func TestApp_builderFailure(t *testing.T) {
	t.Chdir(t.TempDir())
	app := NewApp(&bytes.Buffer{}, func(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Cli, func() error, error) {
		return nil, nil, errors.New("database is locked")
	}, "test")

	err := app.Execute(context.Background(), []string{"status"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/server/storage"
	"github.com/iudanet/walklog/internal/server/storage/storagetest"
)

func setupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestStorage(t *testing.T) {
	storagetest.Run(t, setupTestStorage)
}

func TestNew_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "walklog.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	userID := storagetest.CreateUser(t, s)
	w := models.Walk{Date: "2024-01-05", Distance: 2, TimeElapsed: 30}
	require.NoError(t, s.CreateWalk(ctx, userID, &w))
	require.NoError(t, s.Close())

	// повторный запуск миграций не должен ломать существующую базу
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	walks, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, w.ID, walks[0].ID)
	assert.NoError(t, s.Ping(ctx))
}

func TestStorage_WalksRemovedWithUser(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)
	defer func() {
		_ = s.Close()
	}()

	userID := storagetest.CreateUser(t, s)
	w := models.Walk{Date: "2024-01-05", Distance: 2, TimeElapsed: 30}
	require.NoError(t, s.CreateWalk(ctx, userID, &w))

	_, err = s.DB().ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	require.NoError(t, err)

	walks, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, walks)
}

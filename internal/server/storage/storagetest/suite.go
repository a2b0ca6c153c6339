// Package storagetest содержит общий набор тестов для реализаций storage.Storage.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/server/storage"
)

// Factory создает пустое хранилище для одного теста
type Factory func(t *testing.T) storage.Storage

// Run запускает общий набор тестов
func Run(t *testing.T, newStorage Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStorage(t)) })
	t.Run("CreateWalk", func(t *testing.T) { testCreateWalk(t, newStorage(t)) })
	t.Run("ListWalks", func(t *testing.T) { testListWalks(t, newStorage(t)) })
	t.Run("SyncWalks", func(t *testing.T) { testSyncWalks(t, newStorage(t)) })
	t.Run("DeleteWalks", func(t *testing.T) { testDeleteWalks(t, newStorage(t)) })
	t.Run("DeleteWalksAdjacentHundredths", func(t *testing.T) { testDeleteWalksAdjacentHundredths(t, newStorage(t)) })
	t.Run("DeleteAllWalks", func(t *testing.T) { testDeleteAllWalks(t, newStorage(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStorage(t)) })
	t.Run("RevokedTokens", func(t *testing.T) { testRevokedTokens(t, newStorage(t)) })
}

// CreateUser сохраняет пользователя со случайным email и возвращает его ID
func CreateUser(t *testing.T, s storage.UserStorage) string {
	t.Helper()
	id := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)
	err := s.CreateUser(context.Background(), &models.User{
		ID:           id,
		Email:        "walker-" + id[:8] + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)
	return id
}

func walk(date string, distance float64, timeElapsed int) models.Walk {
	return models.Walk{Date: models.MustParseDate(date), Distance: distance, TimeElapsed: timeElapsed}
}

func testUsers(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        "walker@example.com",
		PasswordHash: "$2a$12$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(ctx, user))

	byEmail, err := s.GetUserByEmail(ctx, "walker@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(byEmail.CreatedAt))

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "walker@example.com", byID.Email)

	duplicate := *user
	duplicate.ID = uuid.NewString()
	assert.ErrorIs(t, s.CreateUser(ctx, &duplicate), storage.ErrUserAlreadyExists)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func testCreateWalk(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)
	otherID := CreateUser(t, s)

	w := walk("2024-01-05", 2.504, 40)
	require.NoError(t, s.CreateWalk(ctx, userID, &w))
	assert.NotEmpty(t, w.ID)
	assert.False(t, w.CreatedAt.IsZero())
	assert.InDelta(t, 2.5, w.Distance, 1e-9)

	dup := walk("2024-01-05", 2.5, 40)
	assert.ErrorIs(t, s.CreateWalk(ctx, userID, &dup), storage.ErrDuplicateWalk)

	// тройка уникальна только в пределах пользователя
	same := walk("2024-01-05", 2.5, 40)
	require.NoError(t, s.CreateWalk(ctx, otherID, &same))

	differentTime := walk("2024-01-05", 2.5, 41)
	require.NoError(t, s.CreateWalk(ctx, userID, &differentTime))
}

func testListWalks(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)
	otherID := CreateUser(t, s)

	empty, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	for _, w := range []models.Walk{
		walk("2024-01-02", 2, 30),
		walk("2024-01-10", 3, 45),
		walk("2023-12-31", 1.25, 20),
	} {
		require.NoError(t, s.CreateWalk(ctx, userID, &w))
	}
	foreign := walk("2024-02-01", 9, 90)
	require.NoError(t, s.CreateWalk(ctx, otherID, &foreign))

	walks, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, walks, 3)
	assert.Equal(t, models.Date("2024-01-10"), walks[0].Date)
	assert.Equal(t, models.Date("2024-01-02"), walks[1].Date)
	assert.Equal(t, models.Date("2023-12-31"), walks[2].Date)
	assert.InDelta(t, 1.25, walks[2].Distance, 1e-9)
	assert.Equal(t, 20, walks[2].TimeElapsed)
	assert.NotEmpty(t, walks[0].ID)
}

func testSyncWalks(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)

	existing := walk("2024-01-01", 2, 30)
	require.NoError(t, s.CreateWalk(ctx, userID, &existing))

	result, err := s.SyncWalks(ctx, userID, []models.Walk{
		walk("2024-01-01", 2, 30),
		walk("2024-01-02", 3, 40),
		walk("2024-01-02", 3, 40),
		walk("2024-01-03", 1.5, 25),
	})
	require.NoError(t, err)
	assert.Equal(t, storage.SyncResult{Added: 2, Skipped: 2}, result)

	walks, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, walks, 3)

	result, err = s.SyncWalks(ctx, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, storage.SyncResult{}, result)
}

func testDeleteWalks(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)

	for _, w := range []models.Walk{
		walk("2024-01-05", 2, 30),
		walk("2024-01-05", 3, 45),
		walk("2024-01-05", 3, 50),
		walk("2024-01-06", 1, 15),
	} {
		require.NoError(t, s.CreateWalk(ctx, userID, &w))
	}

	distance := 3.0
	elapsed := 45

	deleted, err := s.DeleteWalks(ctx, userID, "2024-01-05", storage.WalkMatch{Distance: &distance, TimeElapsed: &elapsed})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = s.DeleteWalks(ctx, userID, "2024-01-05", storage.WalkMatch{Distance: &distance, TimeElapsed: &elapsed})
	assert.ErrorIs(t, err, storage.ErrWalkNotFound)

	// без фильтра удаляются все прогулки дня
	deleted, err = s.DeleteWalks(ctx, userID, "2024-01-05", storage.WalkMatch{})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = s.DeleteWalks(ctx, userID, "2024-03-01", storage.WalkMatch{})
	assert.ErrorIs(t, err, storage.ErrWalkNotFound)

	walks, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, models.Date("2024-01-06"), walks[0].Date)
}

func testDeleteWalksAdjacentHundredths(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)

	for _, w := range []models.Walk{
		walk("2024-01-05", 3.00, 30),
		walk("2024-01-05", 3.01, 30),
		walk("2024-01-05", 3.02, 30),
	} {
		require.NoError(t, s.CreateWalk(ctx, userID, &w))
	}

	distance := 3.01
	elapsed := 30

	deleted, err := s.DeleteWalks(ctx, userID, "2024-01-05", storage.WalkMatch{Distance: &distance, TimeElapsed: &elapsed})
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	walks, err := s.ListWalks(ctx, userID)
	require.NoError(t, err)
	require.Len(t, walks, 2)

	distances := []float64{walks[0].Distance, walks[1].Distance}
	assert.ElementsMatch(t, []float64{3.00, 3.02}, distances)
}

func testDeleteAllWalks(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)
	otherID := CreateUser(t, s)

	_, err := s.SyncWalks(ctx, userID, []models.Walk{walk("2024-01-01", 1, 10), walk("2024-01-02", 2, 20)})
	require.NoError(t, err)
	_, err = s.SyncWalks(ctx, otherID, []models.Walk{walk("2024-01-01", 1, 10)})
	require.NoError(t, err)

	deleted, err := s.DeleteAllWalks(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	deleted, err = s.DeleteAllWalks(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)

	others, err := s.ListWalks(ctx, otherID)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}

func testStats(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)

	stats, err := s.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, storage.WalkStats{}, stats)

	_, err = s.SyncWalks(ctx, userID, []models.Walk{
		walk("2024-01-01", 2.5, 30),
		walk("2024-01-02", 1.25, 20),
	})
	require.NoError(t, err)

	stats, err = s.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Walks)
	assert.InDelta(t, 3.75, stats.Distance, 1e-9)
	assert.Equal(t, 50, stats.Time)
}

func testRevokedTokens(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	userID := CreateUser(t, s)
	now := time.Now().UTC()

	revoked, err := s.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	expired := &models.RevokedToken{JTI: "jti-old", UserID: userID, ExpiresAt: now.Add(-time.Hour), RevokedAt: now.Add(-2 * time.Hour)}
	active := &models.RevokedToken{JTI: "jti-1", UserID: userID, ExpiresAt: now.Add(time.Hour), RevokedAt: now}

	require.NoError(t, s.RevokeToken(ctx, expired))
	require.NoError(t, s.RevokeToken(ctx, active))
	require.NoError(t, s.RevokeToken(ctx, active))

	revoked, err = s.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	deleted, err := s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	revoked, err = s.IsTokenRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = s.IsTokenRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

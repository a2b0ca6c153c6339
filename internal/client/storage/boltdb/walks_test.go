package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/models"
)

func TestWalks_EmptySlot(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	walks, err := store.LoadWalks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, walks)
	assert.Empty(t, walks)
}

func TestWalks_AppendSaveClear(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	a := models.NewWalk("2024-01-01", 1.5, 20)
	b := models.NewWalk("2024-01-02", 2.0, 30)

	require.NoError(t, store.AppendWalk(ctx, a))
	require.NoError(t, store.AppendWalk(ctx, b))

	walks, err := store.LoadWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 2)
	// Порядок добавления сохраняется
	assert.Equal(t, a.ID, walks[0].ID)
	assert.Equal(t, b.ID, walks[1].ID)
	assert.Equal(t, a.Date, walks[0].Date)
	assert.Equal(t, a.Distance, walks[0].Distance)

	// SaveWalks заменяет коллекцию, а не дополняет
	c := models.NewWalk("2024-02-01", 3, 45)
	require.NoError(t, store.SaveWalks(ctx, []models.Walk{c}))
	walks, err = store.LoadWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, c.ID, walks[0].ID)

	require.NoError(t, store.ClearWalks(ctx))
	walks, err = store.LoadWalks(ctx)
	require.NoError(t, err)
	assert.Empty(t, walks)
}

func TestWalks_Remove(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	first := models.NewWalk("2024-01-01", 1.5, 20)
	duplicate := models.NewWalk("2024-01-01", 1.5, 20)
	other := models.NewWalk("2024-01-01", 2.5, 20)
	require.NoError(t, store.SaveWalks(ctx, []models.Walk{first, duplicate, other}))

	// Удаляется только первая совпавшая запись
	removed, err := store.RemoveWalk(ctx, models.Walk{Date: "2024-01-01", Distance: 1.504, TimeElapsed: 20})
	require.NoError(t, err)
	assert.Equal(t, first.ID, removed.ID)

	walks, err := store.LoadWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 2)
	assert.Equal(t, duplicate.ID, walks[0].ID)
	assert.Equal(t, other.ID, walks[1].ID)

	_, err = store.RemoveWalk(ctx, models.Walk{Date: "2024-03-01", Distance: 1, TimeElapsed: 1})
	assert.ErrorIs(t, err, storage.ErrWalkNotFound)

	walks, err = store.LoadWalks(ctx)
	require.NoError(t, err)
	assert.Len(t, walks, 2)
}

func TestWalks_RemoveAdjacentHundredths(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	lower := models.NewWalk("2024-01-05", 3.00, 30)
	upper := models.NewWalk("2024-01-05", 3.01, 30)
	require.NoError(t, store.SaveWalks(ctx, []models.Walk{lower, upper}))

	removed, err := store.RemoveWalk(ctx, models.Walk{Date: "2024-01-05", Distance: 3.01, TimeElapsed: 30})
	require.NoError(t, err)
	assert.Equal(t, upper.ID, removed.ID)

	walks, err := store.LoadWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, lower.ID, walks[0].ID)
}

func TestWalks_RemovePrefersSameID(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	first := models.NewWalk("2024-01-05", 2, 30)
	second := models.NewWalk("2024-01-05", 2, 30)
	require.NoError(t, store.SaveWalks(ctx, []models.Walk{first, second}))

	removed, err := store.RemoveWalk(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, second.ID, removed.ID)

	walks, err := store.LoadWalks(ctx)
	require.NoError(t, err)
	require.Len(t, walks, 1)
	assert.Equal(t, first.ID, walks[0].ID)
}

func TestWalks_CorruptedSlot(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWalks).Put(walksKey, []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = store.LoadWalks(ctx)
	assert.ErrorContains(t, err, "failed to unmarshal")

	err = store.AppendWalk(ctx, models.NewWalk("2024-01-01", 1, 1))
	assert.Error(t, err)
}

func TestQueue_FIFO(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	a := models.NewWalk("2024-01-01", 1, 10)
	b := models.NewWalk("2024-01-02", 2, 20)
	entries := []models.QueueEntry{
		models.NewQueueEntry(models.QueueCreate, &a),
		models.NewQueueEntry(models.QueueDelete, &b),
		models.NewQueueEntry(models.QueueDeleteAll, nil),
	}
	for _, e := range entries {
		require.NoError(t, store.Enqueue(ctx, e))
	}

	got, err := store.LoadQueue(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := range entries {
		assert.Equal(t, entries[i].ID, got[i].ID)
		assert.Equal(t, entries[i].Action, got[i].Action)
	}
	require.NotNil(t, got[0].Data)
	assert.Equal(t, a.Date, got[0].Data.Date)
	assert.Nil(t, got[2].Data)

	require.NoError(t, store.SaveQueue(ctx, got[1:]))
	got, err = store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, store.ClearQueue(ctx))
	got, err = store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGoals(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	goals, err := store.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)

	require.NoError(t, store.SetGoal(ctx, 2024, 500))
	require.NoError(t, store.SetGoal(ctx, 2025, 750.5))
	require.NoError(t, store.SetGoal(ctx, 2024, 600))

	goals, err = store.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Goals{2024: 600, 2025: 750.5}, goals)

	require.NoError(t, store.DeleteGoal(ctx, 2024))
	// Удаление отсутствующей цели не ошибка
	require.NoError(t, store.DeleteGoal(ctx, 1999))

	goals, err = store.LoadGoals(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Goals{2025: 750.5}, goals)
}

func TestSlots_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	dropBucket(t, store, bucketWalks)
	dropBucket(t, store, bucketQueue)
	dropBucket(t, store, bucketGoals)

	_, err := store.LoadWalks(ctx)
	assert.ErrorContains(t, err, "walks bucket not found")
	_, err = store.LoadQueue(ctx)
	assert.ErrorContains(t, err, "queue bucket not found")
	err = store.SetGoal(ctx, 2024, 1)
	assert.ErrorContains(t, err, "goals bucket not found")
}

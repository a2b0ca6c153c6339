package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var keyLastSyncTime = []byte("last_sync_time")

// SaveLastSyncTime saves the moment of the last successful sync
func (s *Storage) SaveLastSyncTime(ctx context.Context, at time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := []byte(at.UTC().Format(time.RFC3339Nano))
		if err := bucket.Put(keyLastSyncTime, value); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}

		return nil
	})
}

// GetLastSyncTime retrieves the moment of the last successful sync
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var at time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := bucket.Get(keyLastSyncTime)
		if value == nil {
			return nil
		}

		parsed, err := time.Parse(time.RFC3339Nano, string(value))
		if err != nil {
			return fmt.Errorf("invalid stored sync time: %w", err)
		}
		at = parsed
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return at, nil
}

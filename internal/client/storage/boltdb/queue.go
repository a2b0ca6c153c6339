package boltdb

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/iudanet/walklog/internal/models"
)

var queueKey = []byte("pending")

// LoadQueue returns pending operations in FIFO order
func (s *Storage) LoadQueue(ctx context.Context) ([]models.QueueEntry, error) {
	entries := []models.QueueEntry{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, err := readSlot(tx, bucketQueue, queueKey, &entries)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// SaveQueue replaces the queue
func (s *Storage) SaveQueue(ctx context.Context, entries []models.QueueEntry) error {
	if entries == nil {
		entries = []models.QueueEntry{}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return writeSlot(tx, bucketQueue, queueKey, entries)
	})
}

// Enqueue appends an operation to the end of the queue
func (s *Storage) Enqueue(ctx context.Context, entry models.QueueEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		entries := []models.QueueEntry{}
		if _, err := readSlot(tx, bucketQueue, queueKey, &entries); err != nil {
			return err
		}

		entries = append(entries, entry)

		return writeSlot(tx, bucketQueue, queueKey, entries)
	})
}

// ClearQueue removes all pending operations
func (s *Storage) ClearQueue(ctx context.Context) error {
	return s.SaveQueue(ctx, nil)
}

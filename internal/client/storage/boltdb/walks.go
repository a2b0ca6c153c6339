package boltdb

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/iudanet/walklog/internal/client/storage"
	"github.com/iudanet/walklog/internal/models"
)

var walksKey = []byte("all")

// LoadWalks returns all stored walks in insertion order
func (s *Storage) LoadWalks(ctx context.Context) ([]models.Walk, error) {
	walks := []models.Walk{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, err := readSlot(tx, bucketWalks, walksKey, &walks)
		return err
	})
	if err != nil {
		return nil, err
	}

	return walks, nil
}

// SaveWalks replaces stored walks
func (s *Storage) SaveWalks(ctx context.Context, walks []models.Walk) error {
	if walks == nil {
		walks = []models.Walk{}
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return writeSlot(tx, bucketWalks, walksKey, walks)
	})
}

// AppendWalk appends a walk to the stored collection
func (s *Storage) AppendWalk(ctx context.Context, walk models.Walk) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		walks := []models.Walk{}
		if _, err := readSlot(tx, bucketWalks, walksKey, &walks); err != nil {
			return err
		}

		walks = append(walks, walk)

		return writeSlot(tx, bucketWalks, walksKey, walks)
	})
}

// RemoveWalk removes the first stored walk matching the given one
func (s *Storage) RemoveWalk(ctx context.Context, walk models.Walk) (models.Walk, error) {
	var removed models.Walk

	err := s.db.Update(func(tx *bbolt.Tx) error {
		walks := []models.Walk{}
		if _, err := readSlot(tx, bucketWalks, walksKey, &walks); err != nil {
			return err
		}

		i := matchIndex(walks, walk)
		if i < 0 {
			return storage.ErrWalkNotFound
		}

		removed = walks[i]
		walks = append(walks[:i], walks[i+1:]...)
		return writeSlot(tx, bucketWalks, walksKey, walks)
	})
	if err != nil {
		return models.Walk{}, err
	}

	return removed, nil
}

// matchIndex returns the index of the walk with the same ID, or of the first walk
// matching the triple; -1 when nothing matches
func matchIndex(walks []models.Walk, walk models.Walk) int {
	if walk.ID != "" {
		for i, w := range walks {
			if w.ID == walk.ID && w.Matches(walk) {
				return i
			}
		}
	}

	for i, w := range walks {
		if w.Matches(walk) {
			return i
		}
	}

	return -1
}

// ClearWalks removes all stored walks
func (s *Storage) ClearWalks(ctx context.Context) error {
	return s.SaveWalks(ctx, []models.Walk{})
}

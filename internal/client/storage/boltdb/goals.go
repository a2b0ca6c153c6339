package boltdb

import (
	"context"

	"go.etcd.io/bbolt"

	"github.com/iudanet/walklog/internal/models"
)

var goalsKey = []byte("by_year")

// LoadGoals returns all yearly goals
func (s *Storage) LoadGoals(ctx context.Context) (models.Goals, error) {
	goals := models.Goals{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, err := readSlot(tx, bucketGoals, goalsKey, &goals)
		return err
	})
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// SetGoal sets the target distance for a year
func (s *Storage) SetGoal(ctx context.Context, year int, target float64) error {
	return s.updateGoals(func(goals models.Goals) {
		goals[year] = target
	})
}

// DeleteGoal removes the goal for a year
func (s *Storage) DeleteGoal(ctx context.Context, year int) error {
	return s.updateGoals(func(goals models.Goals) {
		delete(goals, year)
	})
}

func (s *Storage) updateGoals(fn func(models.Goals)) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		goals := models.Goals{}
		if _, err := readSlot(tx, bucketGoals, goalsKey, &goals); err != nil {
			return err
		}

		fn(goals)

		return writeSlot(tx, bucketGoals, goalsKey, goals)
	})
}

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/server/storage"
)

const insertWalkQuery = `
	INSERT INTO walks (id, user_id, date, distance, time_elapsed, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
`

// ListWalks returns all walks of the user ordered by date desc
func (s *Storage) ListWalks(ctx context.Context, userID string) ([]models.Walk, error) {
	query := `
		SELECT id, date, distance, time_elapsed, created_at
		FROM walks
		WHERE user_id = ?
		ORDER BY date DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query walks: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	walks := []models.Walk{}
	for rows.Next() {
		var (
			w    models.Walk
			date string
		)
		if err := rows.Scan(&w.ID, &date, &w.Distance, &w.TimeElapsed, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan walk: %w", err)
		}
		w.Date = models.Date(date)
		walks = append(walks, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return walks, nil
}

// CreateWalk inserts a walk and fills its ID and CreatedAt
func (s *Storage) CreateWalk(ctx context.Context, userID string, walk *models.Walk) error {
	walk.ID = uuid.NewString()
	walk.CreatedAt = time.Now().UTC()
	walk.Distance = models.RoundDistance(walk.Distance)

	_, err := s.db.ExecContext(ctx, insertWalkQuery,
		walk.ID,
		userID,
		string(walk.Date),
		walk.Distance,
		walk.TimeElapsed,
		walk.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateWalk
		}
		return fmt.Errorf("failed to insert walk: %w", err)
	}

	return nil
}

// SyncWalks inserts walks in one transaction, duplicates are counted as skipped
func (s *Storage) SyncWalks(ctx context.Context, userID string, walks []models.Walk) (storage.SyncResult, error) {
	var result storage.SyncResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, insertWalkQuery+` ON CONFLICT (user_id, date, distance, time_elapsed) DO NOTHING`)
	if err != nil {
		return result, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	now := time.Now().UTC()
	for _, w := range walks {
		res, err := stmt.ExecContext(ctx,
			uuid.NewString(),
			userID,
			string(w.Date),
			models.RoundDistance(w.Distance),
			w.TimeElapsed,
			now,
		)
		if err != nil {
			return storage.SyncResult{}, fmt.Errorf("failed to insert walk %s: %w", w, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return storage.SyncResult{}, fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			result.Skipped++
		} else {
			result.Added++
		}
	}

	if err := tx.Commit(); err != nil {
		return storage.SyncResult{}, fmt.Errorf("failed to commit sync: %w", err)
	}

	return result, nil
}

// DeleteWalks deletes walks of the given day matching the optional filter
func (s *Storage) DeleteWalks(ctx context.Context, userID string, date models.Date, match storage.WalkMatch) (int, error) {
	query := `DELETE FROM walks WHERE user_id = ? AND date = ?`
	args := []any{userID, string(date)}

	if match.Distance != nil {
		query += ` AND ABS(distance - ?) < ?`
		args = append(args, models.RoundDistance(*match.Distance), models.MatchTolerance)
	}
	if match.TimeElapsed != nil {
		query += ` AND time_elapsed = ?`
		args = append(args, *match.TimeElapsed)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete walks: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return 0, storage.ErrWalkNotFound
	}

	return int(rows), nil
}

// DeleteAllWalks deletes every walk of the user
func (s *Storage) DeleteAllWalks(ctx context.Context, userID string) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM walks WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete walks: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

// Stats returns totals over all walks of the user
func (s *Storage) Stats(ctx context.Context, userID string) (storage.WalkStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(distance), 0), COALESCE(SUM(time_elapsed), 0)
		FROM walks
		WHERE user_id = ?
	`

	var stats storage.WalkStats
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&stats.Walks, &stats.Distance, &stats.Time); err != nil {
		return storage.WalkStats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/server/storage"
)

const insertWalkQuery = `
	INSERT INTO walks (id, user_id, date, distance, time_elapsed, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

// ListWalks returns all walks of the user ordered by date desc
func (s *Storage) ListWalks(ctx context.Context, userID string) ([]models.Walk, error) {
	query := `
		SELECT id, date, distance::float8, time_elapsed, created_at
		FROM walks
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query walks: %w", err)
	}
	defer rows.Close()

	walks := []models.Walk{}
	for rows.Next() {
		var (
			w    models.Walk
			date time.Time
		)
		if err := rows.Scan(&w.ID, &date, &w.Distance, &w.TimeElapsed, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan walk: %w", err)
		}
		w.Date = models.DateOf(date)
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

	_, err := s.pool.Exec(ctx, insertWalkQuery,
		walk.ID,
		userID,
		walk.Date.Time(time.UTC),
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

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := insertWalkQuery + ` ON CONFLICT (user_id, date, distance, time_elapsed) DO NOTHING`
	now := time.Now().UTC()

	for _, w := range walks {
		tag, err := tx.Exec(ctx, query,
			uuid.NewString(),
			userID,
			w.Date.Time(time.UTC),
			models.RoundDistance(w.Distance),
			w.TimeElapsed,
			now,
		)
		if err != nil {
			return storage.SyncResult{}, fmt.Errorf("failed to insert walk %s: %w", w, err)
		}
		if tag.RowsAffected() == 0 {
			result.Skipped++
		} else {
			result.Added++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return storage.SyncResult{}, fmt.Errorf("failed to commit sync: %w", err)
	}

	return result, nil
}

// DeleteWalks deletes walks of the given day matching the optional filter
func (s *Storage) DeleteWalks(ctx context.Context, userID string, date models.Date, match storage.WalkMatch) (int, error) {
	query := `DELETE FROM walks WHERE user_id = $1 AND date = $2`
	args := []any{userID, date.Time(time.UTC)}

	if match.Distance != nil {
		args = append(args, models.RoundDistance(*match.Distance), models.MatchTolerance)
		query += ` AND ABS(distance::float8 - $` + strconv.Itoa(len(args)-1) + `) < $` + strconv.Itoa(len(args))
	}
	if match.TimeElapsed != nil {
		args = append(args, *match.TimeElapsed)
		query += ` AND time_elapsed = $` + strconv.Itoa(len(args))
	}

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete walks: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return 0, storage.ErrWalkNotFound
	}

	return int(tag.RowsAffected()), nil
}

// DeleteAllWalks deletes every walk of the user
func (s *Storage) DeleteAllWalks(ctx context.Context, userID string) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM walks WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete walks: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Stats returns totals over all walks of the user
func (s *Storage) Stats(ctx context.Context, userID string) (storage.WalkStats, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(distance), 0)::float8, COALESCE(SUM(time_elapsed), 0)
		FROM walks
		WHERE user_id = $1
	`

	var (
		stats storage.WalkStats
		count int64
		total int64
	)
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&count, &stats.Distance, &total); err != nil {
		return storage.WalkStats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	stats.Walks = int(count)
	stats.Time = int(total)

	return stats, nil
}

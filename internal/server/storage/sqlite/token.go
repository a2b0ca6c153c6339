package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/walklog/internal/models"
)

// RevokeToken marks token ID as revoked
func (s *Storage) RevokeToken(ctx context.Context, token *models.RevokedToken) error {
	query := `
		INSERT INTO revoked_tokens (jti, user_id, expires_at, revoked_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (jti) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query,
		token.JTI,
		token.UserID,
		token.ExpiresAt.Unix(),
		token.RevokedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsTokenRevoked reports whether token ID was revoked
func (s *Storage) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM revoked_tokens WHERE jti = ?`, jti).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return count > 0, nil
}

// DeleteExpiredTokens removes revocations of tokens expired before now
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}

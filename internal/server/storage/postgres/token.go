package postgres

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
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (jti) DO NOTHING
	`

	if _, err := s.pool.Exec(ctx, query, token.JTI, token.UserID, token.ExpiresAt, token.RevokedAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsTokenRevoked reports whether token ID was revoked
func (s *Storage) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`, jti).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return revoked, nil
}

// DeleteExpiredTokens removes revocations of tokens expired before now
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

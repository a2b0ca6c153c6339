package storage

import (
	"context"
	"time"

	"github.com/iudanet/walklog/internal/models"
)

//go:generate moq -out storage_mock.go . UserStorage WalkStorage TokenStorage

// UserStorage defines interface for user persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if email is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by normalized email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// WalkMatch сужает удаление за день до записей с указанной дистанцией и временем
type WalkMatch struct {
	Distance    *float64
	TimeElapsed *int
}

// SyncResult итог пакетной вставки
type SyncResult struct {
	Added   int
	Skipped int
}

// WalkStats агрегаты по прогулкам пользователя
type WalkStats struct {
	Walks    int
	Distance float64
	Time     int
}

// WalkStorage defines interface for walk persistence.
// Дистанция хранится с точностью до сотых, тройка (дата, дистанция, время)
// уникальна в пределах пользователя.
type WalkStorage interface {
	// ListWalks returns all walks of the user ordered by date desc
	ListWalks(ctx context.Context, userID string) ([]models.Walk, error)

	// CreateWalk inserts a walk and fills its ID and CreatedAt
	// Returns ErrDuplicateWalk on triple collision
	CreateWalk(ctx context.Context, userID string, walk *models.Walk) error

	// SyncWalks inserts walks in one transaction, duplicates are counted as skipped
	SyncWalks(ctx context.Context, userID string, walks []models.Walk) (SyncResult, error)

	// DeleteWalks deletes walks of the given day; match narrows the set when not nil
	// Returns ErrWalkNotFound if nothing was deleted
	DeleteWalks(ctx context.Context, userID string, date models.Date, match WalkMatch) (int, error)

	// DeleteAllWalks deletes every walk of the user and returns their number
	DeleteAllWalks(ctx context.Context, userID string) (int, error)

	// Stats returns totals over all walks of the user
	Stats(ctx context.Context, userID string) (WalkStats, error)
}

// TokenStorage хранит отозванные при logout токены до истечения их срока
type TokenStorage interface {
	// RevokeToken marks token ID as revoked, repeated calls are no-op
	RevokeToken(ctx context.Context, token *models.RevokedToken) error

	// IsTokenRevoked reports whether token ID was revoked
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)

	// DeleteExpiredTokens removes revocations of tokens expired before now
	// Returns number of deleted records
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}

// Storage объединяет все хранилища сервера
type Storage interface {
	UserStorage
	WalkStorage
	TokenStorage
	Ping(ctx context.Context) error
	Close() error
}

package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing the authentication session on client.
// A stored token is trusted until the server explicitly rejects it.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	// Returns ErrAuthNotFound if there was nothing to delete
	DeleteAuth(ctx context.Context) error
}

// AuthData represents authentication information in storage
type AuthData struct {
	Token   string `json:"token"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	SavedAt int64  `json:"saved_at"`
}

package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the moment of the last successful exchange with the server
	// (queue replay or bulk sync on login)
	SaveLastSyncTime(ctx context.Context, at time.Time) error

	// GetLastSyncTime retrieves the moment of the last successful sync
	// Returns zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}

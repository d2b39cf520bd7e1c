package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the server cursor (unix ms) of the last catch-up pull
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the cursor of the last catch-up pull
	// Returns 0 if no pull has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// DeviceID returns the stable id of this installation, creating it on first call
	DeviceID(ctx context.Context) (string, error)
}

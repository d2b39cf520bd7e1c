package storage

import (
	"context"

	"github.com/iudanet/ledgersync/internal/models"
)

//go:generate moq -out images_mock.go . ImageStorage

// ImageStorage defines interface for storing image records on client
type ImageStorage interface {
	// SaveImage stores or replaces an image record
	SaveImage(ctx context.Context, image *models.Image) error

	// GetImage retrieves an image by ID
	// Returns ErrImageNotFound if image doesn't exist
	GetImage(ctx context.Context, id string) (*models.Image, error)

	// ListImages returns non-deleted images attached to a bill
	ListImages(ctx context.Context, billID string) ([]*models.Image, error)

	// ListDirtyImages returns up to limit images with SyncStatus != Synced
	ListDirtyImages(ctx context.Context, limit int) ([]*models.Image, error)

	// MarkImageSynced sets SyncStatus=Synced unless the image was deleted meanwhile
	MarkImageSynced(ctx context.Context, id string) (bool, error)

	// RemoveImage hard-removes an image record
	RemoveImage(ctx context.Context, id string) error
}

package boltdb

import (
	"context"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// SaveImage stores or replaces an image record
func (s *Storage) SaveImage(ctx context.Context, image *models.Image) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityImage, func(tx *bbolt.Tx) error {
		return putJSON(tx, bucketImages, image.ID, image)
	})
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// GetImage retrieves an image by ID
func (s *Storage) GetImage(ctx context.Context, id string) (*models.Image, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var image *models.Image
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		image, err = getJSON[models.Image](tx, bucketImages, id, storage.ErrImageNotFound)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return image, nil
}

// ListImages returns non-deleted images of a bill
func (s *Storage) ListImages(ctx context.Context, billID string) ([]*models.Image, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var images []*models.Image
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		images, err = scanJSON(tx, bucketImages, func(i *models.Image) bool {
			return !i.Deleted && i.BillID == billID
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

// ListDirtyImages returns images waiting for upload or remote delete
func (s *Storage) ListDirtyImages(ctx context.Context, limit int) ([]*models.Image, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var images []*models.Image
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		images, err = scanJSON(tx, bucketImages, (*models.Image).IsDirty)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list dirty images: %w", err)
	}

	sort.SliceStable(images, func(i, j int) bool {
		return images[i].CreatedAt.Before(images[j].CreatedAt)
	})
	return capLimit(images, limit), nil
}

// MarkImageSynced sets SyncStatus=Synced unless the image was deleted meanwhile
func (s *Storage) MarkImageSynced(ctx context.Context, id string) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	marked := false
	err := s.update(models.EntityImage, func(tx *bbolt.Tx) error {
		image, err := getJSON[models.Image](tx, bucketImages, id, storage.ErrImageNotFound)
		if err != nil {
			return err
		}
		if image.Deleted {
			return nil
		}
		image.SyncStatus = models.Synced
		marked = true
		return putJSON(tx, bucketImages, id, image)
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to mark image synced: %w", err)
	}
	return marked, nil
}

// RemoveImage hard-removes an image record
func (s *Storage) RemoveImage(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityImage, func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketImages).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to remove image: %w", err)
	}
	return nil
}

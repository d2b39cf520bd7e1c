package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
)

const imageColumns = `id, bill_id, book_id, owner_id, file_name, mime_type, size, path, created_at, deleted`

// SaveImage creates or replaces image metadata.
// LocalPath хранит путь к файлу на сервере.
func (s *Storage) SaveImage(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (` + imageColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(id) DO UPDATE SET
			bill_id = excluded.bill_id,
			book_id = excluded.book_id,
			file_name = excluded.file_name,
			mime_type = excluded.mime_type,
			size = excluded.size,
			path = excluded.path,
			deleted = 0
	`
	_, err := s.db.ExecContext(ctx, query,
		image.ID,
		image.BillID,
		image.BookID,
		image.OwnerID,
		image.FileName,
		image.MimeType,
		image.Size,
		image.LocalPath,
		timeToMs(image.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// GetImage returns image metadata including soft-deleted ones
func (s *Storage) GetImage(ctx context.Context, id string) (*models.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = ?`

	image, err := scanImage(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}
	return image, nil
}

// ListImages returns live images of a bill
func (s *Storage) ListImages(ctx context.Context, billID string) ([]*models.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE bill_id = ? AND deleted = 0 ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer func() { _ = rows.Close() }()

	images := make([]*models.Image, 0)
	for rows.Next() {
		image, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate images: %w", err)
	}
	return images, nil
}

// DeleteImage soft-deletes image metadata
func (s *Storage) DeleteImage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE images SET deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrImageNotFound
	}
	return nil
}

func scanImage(row scanner) (*models.Image, error) {
	image := &models.Image{SyncStatus: models.Synced}
	var createdAt int64
	var deleted int

	err := row.Scan(
		&image.ID,
		&image.BillID,
		&image.BookID,
		&image.OwnerID,
		&image.FileName,
		&image.MimeType,
		&image.Size,
		&image.LocalPath,
		&createdAt,
		&deleted,
	)
	if err != nil {
		return nil, err
	}

	image.CreatedAt = msToTime(createdAt)
	image.Deleted = deleted != 0
	return image, nil
}

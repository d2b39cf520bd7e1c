package storage

import (
	"context"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
)

//go:generate moq -out books_mock.go . BookStorage

// BookStorage defines interface for storing books on client
type BookStorage interface {
	// SaveBook stores or replaces a book as-is (status fields included)
	SaveBook(ctx context.Context, book *models.Book) error

	// GetBook retrieves a book by ID, including soft-deleted ones
	// Returns ErrBookNotFound if book doesn't exist
	GetBook(ctx context.Context, id string) (*models.Book, error)

	// ListBooks returns all non-deleted books ordered by creation time
	ListBooks(ctx context.Context) ([]*models.Book, error)

	// ListDirtyBooks returns up to limit books with SyncStatus != Synced,
	// soft-deleted ones included. limit <= 0 means no limit.
	ListDirtyBooks(ctx context.Context, limit int) ([]*models.Book, error)

	// MarkBookSynced sets SyncStatus=Synced only if the stored UpdatedAt
	// still equals updatedAt. Returns false if the row changed or is gone.
	MarkBookSynced(ctx context.Context, id string, updatedAt time.Time) (bool, error)

	// RemoveBook hard-removes a book. Removing a missing book is not an error.
	RemoveBook(ctx context.Context, id string) error
}

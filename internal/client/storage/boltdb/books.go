package boltdb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// SaveBook stores or replaces a book
func (s *Storage) SaveBook(ctx context.Context, book *models.Book) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityBook, func(tx *bbolt.Tx) error {
		return putJSON(tx, bucketBooks, book.ID, book)
	})
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	return nil
}

// GetBook retrieves a book by ID
func (s *Storage) GetBook(ctx context.Context, id string) (*models.Book, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var book *models.Book
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		book, err = getJSON[models.Book](tx, bucketBooks, id, storage.ErrBookNotFound)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// ListBooks returns all non-deleted books
func (s *Storage) ListBooks(ctx context.Context) ([]*models.Book, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var books []*models.Book
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		books, err = scanJSON(tx, bucketBooks, func(b *models.Book) bool { return !b.Deleted })
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].CreatedAt.Before(books[j].CreatedAt)
	})
	return books, nil
}

// ListDirtyBooks returns books waiting for upload, oldest change first
func (s *Storage) ListDirtyBooks(ctx context.Context, limit int) ([]*models.Book, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var books []*models.Book
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		books, err = scanJSON(tx, bucketBooks, (*models.Book).IsDirty)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list dirty books: %w", err)
	}

	sort.SliceStable(books, func(i, j int) bool {
		return books[i].UpdatedAt.Before(books[j].UpdatedAt)
	})
	return capLimit(books, limit), nil
}

// MarkBookSynced sets SyncStatus=Synced if the book was not changed since updatedAt
func (s *Storage) MarkBookSynced(ctx context.Context, id string, updatedAt time.Time) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	marked := false
	err := s.update(models.EntityBook, func(tx *bbolt.Tx) error {
		book, err := getJSON[models.Book](tx, bucketBooks, id, storage.ErrBookNotFound)
		if err != nil {
			return err
		}
		// запись изменилась во время отправки, оставляем её грязной
		if !book.UpdatedAt.Equal(updatedAt) {
			return nil
		}
		book.SyncStatus = models.Synced
		marked = true
		return putJSON(tx, bucketBooks, id, book)
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to mark book synced: %w", err)
	}
	return marked, nil
}

// RemoveBook hard-removes a book
func (s *Storage) RemoveBook(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityBook, func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBooks).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to remove book: %w", err)
	}
	return nil
}

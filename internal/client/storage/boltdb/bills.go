package boltdb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// SaveBill stores or replaces a bill
func (s *Storage) SaveBill(ctx context.Context, bill *models.Bill) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityBill, func(tx *bbolt.Tx) error {
		return putJSON(tx, bucketBills, bill.ID, bill)
	})
	if err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

// GetBill retrieves a bill by ID
func (s *Storage) GetBill(ctx context.Context, id string) (*models.Bill, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var bill *models.Bill
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		bill, err = getJSON[models.Bill](tx, bucketBills, id, storage.ErrBillNotFound)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return bill, nil
}

// ListBills returns non-deleted bills of a book, newest first
func (s *Storage) ListBills(ctx context.Context, bookID string) ([]*models.Bill, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var bills []*models.Bill
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		bills, err = scanJSON(tx, bucketBills, func(b *models.Bill) bool {
			return !b.Deleted && b.BookID == bookID
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Time.After(bills[j].Time)
	})
	return bills, nil
}

// FindBillByHash returns an active bill with the given content hash
func (s *Storage) FindBillByHash(ctx context.Context, hash string) (*models.Bill, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var found []*models.Bill
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		found, err = scanJSON(tx, bucketBills, func(b *models.Bill) bool {
			return !b.Deleted && b.ContentHash == hash
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}
	if len(found) == 0 {
		return nil, storage.ErrBillNotFound
	}
	return found[0], nil
}

// ListDirtyBills returns bills waiting for upload, oldest change first
func (s *Storage) ListDirtyBills(ctx context.Context, limit int) ([]*models.Bill, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var bills []*models.Bill
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		bills, err = scanJSON(tx, bucketBills, (*models.Bill).IsDirty)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list dirty bills: %w", err)
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].UpdatedAt.Before(bills[j].UpdatedAt)
	})
	return capLimit(bills, limit), nil
}

// MarkBillSynced sets SyncStatus=Synced if the bill was not changed since updatedAt
func (s *Storage) MarkBillSynced(ctx context.Context, id string, updatedAt time.Time) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	marked := false
	err := s.update(models.EntityBill, func(tx *bbolt.Tx) error {
		bill, err := getJSON[models.Bill](tx, bucketBills, id, storage.ErrBillNotFound)
		if err != nil {
			return err
		}
		if !bill.UpdatedAt.Equal(updatedAt) {
			return nil
		}
		bill.SyncStatus = models.Synced
		marked = true
		return putJSON(tx, bucketBills, id, bill)
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to mark bill synced: %w", err)
	}
	return marked, nil
}

// RemoveBill hard-removes a bill
func (s *Storage) RemoveBill(ctx context.Context, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityBill, func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketBills).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("failed to remove bill: %w", err)
	}
	return nil
}

// RemoveBillsByBook hard-removes every bill of a book
func (s *Storage) RemoveBillsByBook(ctx context.Context, bookID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.update(models.EntityBill, func(tx *bbolt.Tx) error {
		bills, err := scanJSON(tx, bucketBills, func(b *models.Bill) bool { return b.BookID == bookID })
		if err != nil {
			return err
		}
		bucket := tx.Bucket(bucketBills)
		for _, b := range bills {
			if err := bucket.Delete([]byte(b.ID)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove bills of book %s: %w", bookID, err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrBookNotFound) ||
		errors.Is(err, storage.ErrBillNotFound) ||
		errors.Is(err, storage.ErrImageNotFound)
}

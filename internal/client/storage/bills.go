package storage

import (
	"context"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
)

//go:generate moq -out bills_mock.go . BillStorage

// BillStorage defines interface for storing bills on client
type BillStorage interface {
	// SaveBill stores or replaces a bill as-is
	SaveBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by ID, including soft-deleted ones
	// Returns ErrBillNotFound if bill doesn't exist
	GetBill(ctx context.Context, id string) (*models.Bill, error)

	// ListBills returns non-deleted bills of a book, newest first
	ListBills(ctx context.Context, bookID string) ([]*models.Bill, error)

	// FindBillByHash returns a non-deleted bill with the given content hash
	// Returns ErrBillNotFound if there is none
	FindBillByHash(ctx context.Context, hash string) (*models.Bill, error)

	// ListDirtyBills returns up to limit bills with SyncStatus != Synced
	ListDirtyBills(ctx context.Context, limit int) ([]*models.Bill, error)

	// MarkBillSynced sets SyncStatus=Synced if UpdatedAt still equals updatedAt
	MarkBillSynced(ctx context.Context, id string, updatedAt time.Time) (bool, error)

	// RemoveBill hard-removes a bill
	RemoveBill(ctx context.Context, id string) error

	// RemoveBillsByBook hard-removes every bill of a book
	RemoveBillsByBook(ctx context.Context, bookID string) error
}

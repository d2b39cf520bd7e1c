package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
)

const billColumns = `
	x.id, x.book_id, x.owner_id, x.time, x.money, x.type, x.category, x.remark, x.hash, x.images,
	x.created_at, x.updated_at, x.changed_at, x.deleted
`

// UpsertBill creates or replaces a bill
func (s *Storage) UpsertBill(ctx context.Context, bill *models.Bill) error {
	images, err := json.Marshal(nonNil(bill.ImageIDs))
	if err != nil {
		return fmt.Errorf("failed to marshal image ids: %w", err)
	}

	return s.write(ctx, func(tx *sql.Tx, next func() int64) error {
		// книга должна существовать и быть живой
		var deleted int
		err := tx.QueryRowContext(ctx, `SELECT deleted FROM books WHERE id = ?`, bill.BookID).Scan(&deleted)
		if errors.Is(err, sql.ErrNoRows) || (err == nil && deleted != 0) {
			return storage.ErrBookNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check book: %w", err)
		}

		query := `
			INSERT INTO bills (id, book_id, owner_id, time, money, type, category, remark, hash, images,
				created_at, updated_at, changed_at, deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
			ON CONFLICT(id) DO UPDATE SET
				book_id = excluded.book_id,
				time = excluded.time,
				money = excluded.money,
				type = excluded.type,
				category = excluded.category,
				remark = excluded.remark,
				hash = excluded.hash,
				images = excluded.images,
				updated_at = excluded.updated_at,
				changed_at = excluded.changed_at,
				deleted = 0
		`
		_, err = tx.ExecContext(ctx, query,
			bill.ID,
			bill.BookID,
			bill.OwnerID,
			timeToMs(bill.Time),
			int64(bill.Money),
			int(bill.Type),
			bill.Category,
			bill.Remark,
			bill.ContentHash,
			string(images),
			timeToMs(bill.CreatedAt),
			timeToMs(bill.UpdatedAt),
			next(),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert bill: %w", err)
		}
		return nil
	})
}

// GetBill returns a bill including soft-deleted ones
func (s *Storage) GetBill(ctx context.Context, id string) (*models.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills x WHERE x.id = ?`

	bill, _, err := scanBill(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return bill, nil
}

// DeleteBill soft-deletes a bill
func (s *Storage) DeleteBill(ctx context.Context, id string, at time.Time) error {
	return s.write(ctx, func(tx *sql.Tx, next func() int64) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE bills SET deleted = 1, updated_at = ?, changed_at = ? WHERE id = ?`,
			timeToMs(at), next(), id)
		if err != nil {
			return fmt.Errorf("failed to delete bill: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return storage.ErrBillNotFound
		}
		return nil
	})
}

func scanBill(row scanner) (*models.Bill, int64, error) {
	bill := &models.Bill{SyncStatus: models.Synced}
	var when, createdAt, updatedAt, changedAt, money int64
	var billType, deleted int
	var images string

	err := row.Scan(
		&bill.ID,
		&bill.BookID,
		&bill.OwnerID,
		&when,
		&money,
		&billType,
		&bill.Category,
		&bill.Remark,
		&bill.ContentHash,
		&images,
		&createdAt,
		&updatedAt,
		&changedAt,
		&deleted,
	)
	if err != nil {
		return nil, 0, err
	}

	bill.Time = msToTime(when)
	bill.CreatedAt = msToTime(createdAt)
	bill.UpdatedAt = msToTime(updatedAt)
	bill.Money = models.Money(money)
	bill.Type = models.BillType(billType)
	bill.Deleted = deleted != 0
	if err := json.Unmarshal([]byte(images), &bill.ImageIDs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode image ids: %w", err)
	}
	if len(bill.ImageIDs) == 0 {
		bill.ImageIDs = nil
	}
	return bill, changedAt, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
)

// Changes returns books and bills visible to userID changed after since.
// Обе таблицы читаются с запасом в одну строку и сливаются по changed_at;
// метки уникальны, поэтому next_since не разрезает группу строк.
func (s *Storage) Changes(ctx context.Context, userID string, since int64, limit int) (*storage.Changes, error) {
	if limit <= 0 {
		limit = 500
	}

	books, bookStamps, err := s.changedBooks(ctx, userID, since, limit+1)
	if err != nil {
		return nil, err
	}
	bills, billStamps, err := s.changedBills(ctx, userID, since, limit+1)
	if err != nil {
		return nil, err
	}

	result := &storage.Changes{
		Books:     make([]*models.Book, 0),
		Bills:     make([]*models.Bill, 0),
		NextSince: since,
	}

	i, j := 0, 0
	for taken := 0; taken < limit; taken++ {
		switch {
		case i < len(books) && (j >= len(bills) || bookStamps[i] < billStamps[j]):
			result.Books = append(result.Books, books[i])
			result.NextSince = bookStamps[i]
			i++
		case j < len(bills):
			result.Bills = append(result.Bills, bills[j])
			result.NextSince = billStamps[j]
			j++
		default:
			return result, nil
		}
	}

	result.HasMore = i < len(books) || j < len(bills)
	return result, nil
}

func (s *Storage) changedBooks(ctx context.Context, userID string, since int64, limit int) ([]*models.Book, []int64, error) {
	query := `SELECT ` + bookColumns + ` FROM books b
		WHERE b.changed_at > ? AND ` + visibleBook + `
		ORDER BY b.changed_at
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, since, userID, userID, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query changed books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var books []*models.Book
	var stamps []int64
	for rows.Next() {
		book, stamp, err := scanBook(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
		stamps = append(stamps, stamp)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate books: %w", err)
	}
	return books, stamps, nil
}

func (s *Storage) changedBills(ctx context.Context, userID string, since int64, limit int) ([]*models.Bill, []int64, error) {
	query := `SELECT ` + billColumns + ` FROM bills x
		JOIN books b ON b.id = x.book_id
		WHERE x.changed_at > ? AND ` + visibleBook + `
		ORDER BY x.changed_at
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, since, userID, userID, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query changed bills: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bills []*models.Bill
	var stamps []int64
	for rows.Next() {
		bill, stamp, err := scanBill(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
		stamps = append(stamps, stamp)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	return bills, stamps, nil
}

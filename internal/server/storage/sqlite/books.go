package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
)

const bookColumns = `
	b.id, b.owner_id, b.name, b.type, b.banner, b.created_at, b.updated_at, b.changed_at, b.deleted,
	(SELECT group_concat(m.user_id, ',') FROM book_members m WHERE m.book_id = b.id)
`

// visibleBook условие видимости книги b для пользователя (два параметра user_id)
const visibleBook = `(b.owner_id = ? OR EXISTS (
	SELECT 1 FROM book_members vm WHERE vm.book_id = b.id AND vm.user_id = ?
))`

// UpsertBook creates or replaces a book by its client-generated id
func (s *Storage) UpsertBook(ctx context.Context, book *models.Book) error {
	return s.write(ctx, func(tx *sql.Tx, next func() int64) error {
		query := `
			INSERT INTO books (id, owner_id, name, type, banner, created_at, updated_at, changed_at, deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				type = excluded.type,
				banner = excluded.banner,
				updated_at = excluded.updated_at,
				changed_at = excluded.changed_at,
				deleted = 0
		`
		// владелец книги не меняется при обновлении
		_, err := tx.ExecContext(ctx, query,
			book.ID,
			book.OwnerID,
			book.Name,
			book.Type,
			book.BannerURL,
			timeToMs(book.CreatedAt),
			timeToMs(book.UpdatedAt),
			next(),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert book: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM book_members WHERE book_id = ?`, book.ID); err != nil {
			return fmt.Errorf("failed to reset book members: %w", err)
		}
		for _, member := range book.Members {
			_, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO book_members (book_id, user_id) VALUES (?, ?)`, book.ID, member)
			if err != nil {
				return fmt.Errorf("failed to insert book member: %w", err)
			}
		}
		return nil
	})
}

// GetBook returns a book including soft-deleted ones
func (s *Storage) GetBook(ctx context.Context, id string) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.id = ?`

	book, _, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// ListBooks returns live books owned by or shared with userID
func (s *Storage) ListBooks(ctx context.Context, userID string) ([]*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b
		WHERE b.deleted = 0 AND ` + visibleBook + `
		ORDER BY b.created_at, b.id`

	rows, err := s.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	books := make([]*models.Book, 0)
	for rows.Next() {
		book, _, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}
	return books, nil
}

// DeleteBook soft-deletes the book and every bill in it
func (s *Storage) DeleteBook(ctx context.Context, id string, at time.Time) error {
	return s.write(ctx, func(tx *sql.Tx, next func() int64) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE books SET deleted = 1, updated_at = ?, changed_at = ? WHERE id = ?`,
			timeToMs(at), next(), id)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return storage.ErrBookNotFound
		}

		billIDs, err := queryIDs(ctx, tx, `SELECT id FROM bills WHERE book_id = ? AND deleted = 0 ORDER BY id`, id)
		if err != nil {
			return err
		}
		// каждой записи своя метка, чтобы постраничная лента не теряла строки
		for _, billID := range billIDs {
			_, err := tx.ExecContext(ctx,
				`UPDATE bills SET deleted = 1, updated_at = ?, changed_at = ? WHERE id = ?`,
				timeToMs(at), next(), billID)
			if err != nil {
				return fmt.Errorf("failed to delete bill %s: %w", billID, err)
			}
		}
		return nil
	})
}

type scanner interface {
	Scan(dest ...any) error
}

// scanBook читает строку bookColumns и возвращает книгу вместе с её меткой изменения
func scanBook(row scanner) (*models.Book, int64, error) {
	book := &models.Book{SyncStatus: models.Synced}
	var createdAt, updatedAt, changedAt int64
	var deleted int
	var members sql.NullString

	err := row.Scan(
		&book.ID,
		&book.OwnerID,
		&book.Name,
		&book.Type,
		&book.BannerURL,
		&createdAt,
		&updatedAt,
		&changedAt,
		&deleted,
		&members,
	)
	if err != nil {
		return nil, 0, err
	}

	book.CreatedAt = msToTime(createdAt)
	book.UpdatedAt = msToTime(updatedAt)
	book.Deleted = deleted != 0
	if members.Valid && members.String != "" {
		book.Members = strings.Split(members.String, ",")
	}
	return book, changedAt, nil
}

func queryIDs(ctx context.Context, tx *sql.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

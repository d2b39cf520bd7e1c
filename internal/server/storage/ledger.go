package storage

import (
	"context"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
)

//go:generate moq -out ledger_mock.go . LedgerStorage

// BookStorage хранит книги и их участников.
// Каждая запись получает серверную метку изменения, по которой строится лента Changes.
type BookStorage interface {
	// UpsertBook creates or replaces a book by its client-generated id.
	// A deleted book is revived by the upsert.
	UpsertBook(ctx context.Context, book *models.Book) error

	// GetBook returns a book including soft-deleted ones.
	// Returns ErrBookNotFound if the id is unknown
	GetBook(ctx context.Context, id string) (*models.Book, error)

	// ListBooks returns live books owned by or shared with userID
	ListBooks(ctx context.Context, userID string) ([]*models.Book, error)

	// DeleteBook soft-deletes the book and every bill in it
	DeleteBook(ctx context.Context, id string, at time.Time) error
}

// BillStorage хранит записи книг
type BillStorage interface {
	// UpsertBill creates or replaces a bill.
	// Returns ErrBookNotFound if the bill's book is missing or deleted
	UpsertBill(ctx context.Context, bill *models.Bill) error

	// GetBill returns a bill including soft-deleted ones.
	// Returns ErrBillNotFound if the id is unknown
	GetBill(ctx context.Context, id string) (*models.Bill, error)

	// DeleteBill soft-deletes a bill
	DeleteBill(ctx context.Context, id string, at time.Time) error
}

// ImageStorage хранит метаданные картинок; файлы лежат на диске
type ImageStorage interface {
	// SaveImage creates or replaces image metadata
	SaveImage(ctx context.Context, image *models.Image) error

	// GetImage returns image metadata including soft-deleted ones.
	// Returns ErrImageNotFound if the id is unknown
	GetImage(ctx context.Context, id string) (*models.Image, error)

	// ListImages returns live images of a bill
	ListImages(ctx context.Context, billID string) ([]*models.Image, error)

	// DeleteImage soft-deletes image metadata
	DeleteImage(ctx context.Context, id string) error
}

// Changes страница ленты изменений для пользователя
type Changes struct {
	Books     []*models.Book
	Bills     []*models.Bill
	NextSince int64
	HasMore   bool
}

// ChangeStorage отдаёт изменения книг и записей после метки since
type ChangeStorage interface {
	// Changes returns up to limit books and bills visible to userID whose
	// server change stamp is greater than since, oldest first.
	// Deleted rows are included so clients can converge.
	Changes(ctx context.Context, userID string, since int64, limit int) (*Changes, error)
}

// LedgerStorage объединяет хранилища данных книг
type LedgerStorage interface {
	BookStorage
	BillStorage
	ImageStorage
	ChangeStorage
}

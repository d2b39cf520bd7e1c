// Package ledger implements local bookkeeping operations. Every mutation
// resets the sync status of the touched rows so the drain loop picks them up.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

var (
	// ErrDuplicateBill возвращается, если запись с тем же содержимым уже есть
	ErrDuplicateBill = errors.New("bill with the same content already exists")
	// ErrBookDeleted книга удалена, изменять её нельзя
	ErrBookDeleted = errors.New("book is deleted")
	// ErrEmptyName пустое имя книги
	ErrEmptyName = errors.New("book name is required")
)

// Store локальные коллекции, с которыми работает ledger
type Store interface {
	storage.BookStorage
	storage.BillStorage
	storage.ImageStorage
}

// Service handles local CRUD for books, bills and images.
type Service struct {
	store     Store
	now       func() time.Time
	imagesDir string
}

// NewService creates a ledger service. Attached image files are copied into imagesDir.
func NewService(store Store, imagesDir string) *Service {
	return &Service{
		store:     store,
		imagesDir: imagesDir,
		now:       time.Now,
	}
}

// CreateBook creates a new local book owned by ownerID.
func (s *Service) CreateBook(ctx context.Context, ownerID, name, bookType string) (*models.Book, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := s.now().UTC()
	book := &models.Book{
		ID:        uuid.New().String(),
		Name:      name,
		Type:      bookType,
		OwnerID:   ownerID,
		CreatedAt: now,
	}
	book.Touch(now)

	if err := s.store.SaveBook(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to save book: %w", err)
	}
	return book, nil
}

// GetBook returns a live book. Soft-deleted books are reported as not found.
func (s *Service) GetBook(ctx context.Context, id string) (*models.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	if book.Deleted {
		return nil, fmt.Errorf("failed to get book: %w", storage.ErrBookNotFound)
	}
	return book, nil
}

// ListBooks returns all live books.
func (s *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// UpdateBook applies fn to a live book and marks it dirty.
func (s *Service) UpdateBook(ctx context.Context, id string, fn func(b *models.Book)) (*models.Book, error) {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	fn(book)
	book.ID = id
	if strings.TrimSpace(book.Name) == "" {
		return nil, ErrEmptyName
	}
	book.Touch(s.now().UTC())

	if err := s.store.SaveBook(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to save book: %w", err)
	}
	return book, nil
}

// DeleteBook soft-deletes a book together with its bills and their images.
// Строки остаются до подтверждения удаления сервером.
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	book, err := s.GetBook(ctx, id)
	if err != nil {
		return err
	}

	bills, err := s.store.ListBills(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list bills: %w", err)
	}

	now := s.now().UTC()
	for _, bill := range bills {
		if err := s.deleteImages(ctx, bill.ID); err != nil {
			return err
		}
		bill.Deleted = true
		bill.Touch(now)
		if err := s.store.SaveBill(ctx, bill); err != nil {
			return fmt.Errorf("failed to delete bill %s: %w", bill.ID, err)
		}
	}

	book.Deleted = true
	book.Touch(now)
	if err := s.store.SaveBook(ctx, book); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

// BillInput описывает новую запись или её изменение
type BillInput struct {
	Time     time.Time
	Category string
	Remark   string
	Money    models.Money
	Type     models.BillType
}

func (in BillInput) validate() error {
	if in.Type != models.BillTypeIncome && in.Type != models.BillTypeExpenditure {
		return fmt.Errorf("invalid bill type %d", in.Type)
	}
	if in.Money < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

// CreateBill records a bill in a live book. A bill whose content hash matches
// an existing live bill is rejected with ErrDuplicateBill.
func (s *Service) CreateBill(ctx context.Context, ownerID, bookID string, in BillInput) (*models.Bill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetBook(ctx, bookID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if in.Time.IsZero() {
		in.Time = now
	}

	bill := &models.Bill{
		ID:        uuid.New().String(),
		BookID:    bookID,
		OwnerID:   ownerID,
		Time:      in.Time.UTC().Truncate(time.Second),
		Category:  in.Category,
		Remark:    in.Remark,
		Money:     in.Money,
		Type:      in.Type,
		CreatedAt: now,
	}
	bill.Touch(now)

	if err := s.checkDuplicate(ctx, bill); err != nil {
		return nil, err
	}
	if err := s.store.SaveBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	return bill, nil
}

func (s *Service) checkDuplicate(ctx context.Context, bill *models.Bill) error {
	existing, err := s.store.FindBillByHash(ctx, bill.ContentHash)
	switch {
	case errors.Is(err, storage.ErrBillNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check duplicate: %w", err)
	case existing.ID != bill.ID:
		return fmt.Errorf("%w: %s", ErrDuplicateBill, existing.ID)
	}
	return nil
}

// GetBill returns a live bill.
func (s *Service) GetBill(ctx context.Context, id string) (*models.Bill, error) {
	bill, err := s.store.GetBill(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	if bill.Deleted {
		return nil, fmt.Errorf("failed to get bill: %w", storage.ErrBillNotFound)
	}
	return bill, nil
}

// ListBills returns live bills of a book, newest first.
func (s *Service) ListBills(ctx context.Context, bookID string) ([]*models.Bill, error) {
	bills, err := s.store.ListBills(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

// UpdateBill replaces the business fields of a live bill.
func (s *Service) UpdateBill(ctx context.Context, id string, in BillInput) (*models.Bill, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	if !in.Time.IsZero() {
		bill.Time = in.Time.UTC().Truncate(time.Second)
	}
	bill.Category = in.Category
	bill.Remark = in.Remark
	bill.Money = in.Money
	bill.Type = in.Type
	bill.Touch(s.now().UTC())

	if err := s.checkDuplicate(ctx, bill); err != nil {
		return nil, err
	}
	if err := s.store.SaveBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}
	return bill, nil
}

// DeleteBill soft-deletes a bill and its images.
func (s *Service) DeleteBill(ctx context.Context, id string) error {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return err
	}

	if err := s.deleteImages(ctx, id); err != nil {
		return err
	}

	bill.Deleted = true
	bill.Touch(s.now().UTC())
	if err := s.store.SaveBill(ctx, bill); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return nil
}

// deleteImages помечает удалёнными все картинки записи
func (s *Service) deleteImages(ctx context.Context, billID string) error {
	images, err := s.store.ListImages(ctx, billID)
	if err != nil {
		return fmt.Errorf("failed to list images: %w", err)
	}
	for _, img := range images {
		img.Deleted = true
		img.SyncStatus = models.NotSynced
		if err := s.store.SaveImage(ctx, img); err != nil {
			return fmt.Errorf("failed to delete image %s: %w", img.ID, err)
		}
	}
	return nil
}

// AddImage copies the file at srcPath into the images directory and attaches it to a bill.
func (s *Service) AddImage(ctx context.Context, ownerID, billID, srcPath string) (*models.Image, error) {
	bill, err := s.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}

	mtype, err := mimetype.DetectFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	id := uuid.New().String()
	dst := filepath.Join(s.imagesDir, id+mtype.Extension())
	size, err := copyFile(srcPath, dst)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	img := &models.Image{
		ID:        id,
		BillID:    bill.ID,
		BookID:    bill.BookID,
		FileName:  filepath.Base(srcPath),
		MimeType:  mtype.String(),
		LocalPath: dst,
		OwnerID:   ownerID,
		Size:      size,
		CreatedAt: now,
	}
	if err := s.store.SaveImage(ctx, img); err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("failed to save image: %w", err)
	}

	bill.ImageIDs = append(bill.ImageIDs, id)
	bill.Touch(now)
	if err := s.store.SaveBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to attach image: %w", err)
	}
	return img, nil
}

// ListImages returns live images of a bill.
func (s *Service) ListImages(ctx context.Context, billID string) ([]*models.Image, error) {
	images, err := s.store.ListImages(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

// DeleteImage soft-deletes an image and detaches it from its bill.
func (s *Service) DeleteImage(ctx context.Context, id string) error {
	img, err := s.store.GetImage(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get image: %w", err)
	}
	if img.Deleted {
		return fmt.Errorf("failed to get image: %w", storage.ErrImageNotFound)
	}

	img.Deleted = true
	img.SyncStatus = models.NotSynced
	if err := s.store.SaveImage(ctx, img); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	bill, err := s.store.GetBill(ctx, img.BillID)
	if errors.Is(err, storage.ErrBillNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get bill: %w", err)
	}
	if bill.Deleted {
		return nil
	}

	bill.ImageIDs = slices.DeleteFunc(bill.ImageIDs, func(v string) bool { return v == id })
	bill.Touch(s.now().UTC())
	if err := s.store.SaveBill(ctx, bill); err != nil {
		return fmt.Errorf("failed to detach image: %w", err)
	}
	return nil
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return 0, fmt.Errorf("failed to create images directory: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("failed to copy file: %w", err)
	}
	return n, nil
}

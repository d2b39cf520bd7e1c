package sync

import (
	"context"
	"errors"
	"io"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

//go:generate moq -out remote_mock.go . RemoteAPI

// RemoteAPI операции сервера, которые использует синхронизация
type RemoteAPI interface {
	PutBook(ctx context.Context, book *models.Book) error
	DeleteBook(ctx context.Context, id string) error
	PutBill(ctx context.Context, bill *models.Bill) error
	DeleteBill(ctx context.Context, id string) error
	UploadImage(ctx context.Context, image *models.Image, content io.Reader) error
	DeleteImage(ctx context.Context, id string) error
	Changes(ctx context.Context, since int64, limit int) (*api.ChangesResponse, error)
}

// Store локальное хранилище синхронизируемых коллекций
type Store interface {
	storage.BookStorage
	storage.BillStorage
	storage.ImageStorage
}

// isGone reports a remote "not found", which for a delete means the job is already done.
func isGone(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Code == api.CodeNotFound
}

package receiver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// keepLocal: локальная неотправленная версия новее пришедшей, её не трогаем.
// Она уйдёт на сервер в следующем цикле выгрузки.
func keepLocal(localDirty bool, local, remote time.Time) bool {
	return localDirty && !local.Before(remote)
}

func entityID(msg models.SyncMessage) (string, error) {
	id, ok := msg.ContentID()
	if !ok {
		return "", fmt.Errorf("message %s has no entity id", msg.ID)
	}
	return id, nil
}

// kindHandler применяет уведомления ровно одного типа
type kindHandler struct {
	apply func(ctx context.Context, msg models.SyncMessage) error
	kind  string
}

func (h *kindHandler) CanHandle(kind string) bool {
	return kind == h.kind
}

func (h *kindHandler) HandleMessage(ctx context.Context, msg models.SyncMessage) error {
	return h.apply(ctx, msg)
}

// applier переносит содержимое уведомлений в локальное хранилище
type applier struct {
	store  Store
	logger *slog.Logger
}

// defaultHandlers returns one handler per remote change kind.
func defaultHandlers(store Store, logger *slog.Logger) []Handler {
	a := &applier{store: store, logger: logger}
	return []Handler{
		&kindHandler{kind: models.KindAddBook, apply: a.upsertBook},
		&kindHandler{kind: models.KindUpdateBook, apply: a.upsertBook},
		&kindHandler{kind: models.KindDeleteBook, apply: a.deleteBook},
		&kindHandler{kind: models.KindAddBill, apply: a.upsertBill},
		&kindHandler{kind: models.KindUpdateBill, apply: a.upsertBill},
		&kindHandler{kind: models.KindDeleteBill, apply: a.deleteBill},
		&kindHandler{kind: models.KindUploadImage, apply: a.upsertImage},
		&kindHandler{kind: models.KindDeleteImage, apply: a.deleteImage},
	}
}

func (a *applier) deleteBook(ctx context.Context, msg models.SyncMessage) error {
	id, err := entityID(msg)
	if err != nil && msg.BookID == "" {
		return err
	}
	if id == "" {
		id = msg.BookID
	}
	if err := a.store.RemoveBillsByBook(ctx, id); err != nil {
		return err
	}
	if err := a.store.RemoveBook(ctx, id); err != nil {
		return err
	}
	a.logger.Info("Book removed by remote change", "book_id", id)
	return nil
}

func (a *applier) upsertBook(ctx context.Context, msg models.SyncMessage) error {
	var book models.Book
	if err := json.Unmarshal(msg.Content, &book); err != nil {
		return fmt.Errorf("failed to decode book: %w", err)
	}
	if book.ID == "" {
		return fmt.Errorf("book in message %s has no id", msg.ID)
	}

	local, err := a.store.GetBook(ctx, book.ID)
	switch {
	case errors.Is(err, storage.ErrBookNotFound):
	case err != nil:
		return err
	case keepLocal(local.IsDirty(), local.UpdatedAt, book.UpdatedAt):
		a.logger.Debug("Local book is newer, keeping it", "book_id", book.ID)
		return nil
	}

	book.SyncStatus = models.Synced
	book.Deleted = false
	return a.store.SaveBook(ctx, &book)
}

func (a *applier) deleteBill(ctx context.Context, msg models.SyncMessage) error {
	id, err := entityID(msg)
	if err != nil {
		return err
	}
	if err := a.store.RemoveBill(ctx, id); err != nil {
		return err
	}
	a.logger.Debug("Bill removed by remote change", "bill_id", id)
	return nil
}

func (a *applier) upsertBill(ctx context.Context, msg models.SyncMessage) error {
	var bill models.Bill
	if err := json.Unmarshal(msg.Content, &bill); err != nil {
		return fmt.Errorf("failed to decode bill: %w", err)
	}
	if bill.ID == "" {
		return fmt.Errorf("bill in message %s has no id", msg.ID)
	}
	if bill.BookID == "" {
		bill.BookID = msg.BookID
	}

	local, err := a.store.GetBill(ctx, bill.ID)
	switch {
	case errors.Is(err, storage.ErrBillNotFound):
	case err != nil:
		return err
	case keepLocal(local.IsDirty(), local.UpdatedAt, bill.UpdatedAt):
		a.logger.Debug("Local bill is newer, keeping it", "bill_id", bill.ID)
		return nil
	}

	bill.SyncStatus = models.Synced
	bill.Deleted = false
	if bill.ContentHash == "" {
		bill.ContentHash = models.ContentHash(&bill)
	}
	return a.store.SaveBill(ctx, &bill)
}

func (a *applier) deleteImage(ctx context.Context, msg models.SyncMessage) error {
	id, err := entityID(msg)
	if err != nil {
		return err
	}
	return a.store.RemoveImage(ctx, id)
}

func (a *applier) upsertImage(ctx context.Context, msg models.SyncMessage) error {
	var image models.Image
	if err := json.Unmarshal(msg.Content, &image); err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	if image.ID == "" {
		return fmt.Errorf("image in message %s has no id", msg.ID)
	}

	// файл остаётся на сервере, локально хранится только запись
	image.LocalPath = ""
	image.SyncStatus = models.Synced
	if image.BookID == "" {
		image.BookID = msg.BookID
	}
	return a.store.SaveImage(ctx, &image)
}

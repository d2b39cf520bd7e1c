package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// DefaultPullLimit размер страницы при догоняющей загрузке
const DefaultPullLimit = 500

// PullResult итог догоняющей загрузки
type PullResult struct {
	Books   int // сохранено или обновлено книг
	Bills   int // сохранено или обновлено записей
	Removed int // удалено локально по данным сервера
	Kept    int // пропущено: локальная версия ещё не отправлена
	Pages   int
}

// Puller догружает изменения сервера, пропущенные пока клиент был офлайн.
// Уведомления брокера лишь подсказка; источник истины - этот проход.
type Puller struct {
	api    RemoteAPI
	store  Store
	meta   storage.MetadataStorage
	logger *slog.Logger
	limit  int
}

// NewPuller creates a Puller; limit <= 0 means DefaultPullLimit.
func NewPuller(remote RemoteAPI, store Store, meta storage.MetadataStorage, limit int, logger *slog.Logger) *Puller {
	if limit <= 0 {
		limit = DefaultPullLimit
	}
	return &Puller{api: remote, store: store, meta: meta, limit: limit, logger: logger}
}

// Pull pages through remote changes since the stored cursor and applies them.
func (p *Puller) Pull(ctx context.Context) (*PullResult, error) {
	since, err := p.meta.GetLastSyncTimestamp(ctx)
	if err != nil {
		p.logger.Warn("Failed to get last sync timestamp, using 0", "error", err)
		since = 0
	}

	p.logger.Info("Pulling remote changes", "since", since)
	result := &PullResult{}

	for {
		resp, err := p.api.Changes(ctx, since, p.limit)
		if err != nil {
			return result, fmt.Errorf("failed to get changes: %w", err)
		}
		result.Pages++

		for i := range resp.Books {
			p.applyBook(ctx, &resp.Books[i], result)
		}
		for i := range resp.Bills {
			p.applyBill(ctx, &resp.Bills[i], result)
		}

		if resp.NextSince > since {
			if err := p.meta.SaveLastSyncTimestamp(ctx, resp.NextSince); err != nil {
				return result, fmt.Errorf("failed to save sync cursor: %w", err)
			}
		}

		// курсор не сдвинулся - дальше листать бессмысленно
		if !resp.HasMore || resp.NextSince <= since {
			break
		}
		since = resp.NextSince
	}

	p.logger.Info("Pull completed",
		"pages", result.Pages,
		"books", result.Books,
		"bills", result.Bills,
		"removed", result.Removed,
		"kept_local", result.Kept)

	return result, nil
}

func (p *Puller) applyBook(ctx context.Context, remote *models.Book, result *PullResult) {
	local, err := p.store.GetBook(ctx, remote.ID)
	if err != nil && !errors.Is(err, storage.ErrBookNotFound) {
		p.logger.Warn("Failed to read local book", "book_id", remote.ID, "error", err)
		return
	}
	if local != nil && local.IsDirty() {
		result.Kept++
		return
	}

	if remote.Deleted {
		if local == nil {
			return
		}
		if err := p.store.RemoveBillsByBook(ctx, remote.ID); err != nil {
			p.logger.Warn("Failed to remove bills of deleted book", "book_id", remote.ID, "error", err)
			return
		}
		if err := p.store.RemoveBook(ctx, remote.ID); err != nil {
			p.logger.Warn("Failed to remove deleted book", "book_id", remote.ID, "error", err)
			return
		}
		result.Removed++
		return
	}

	remote.SyncStatus = models.Synced
	if err := p.store.SaveBook(ctx, remote); err != nil {
		p.logger.Warn("Failed to save pulled book", "book_id", remote.ID, "error", err)
		return
	}
	result.Books++
}

func (p *Puller) applyBill(ctx context.Context, remote *models.Bill, result *PullResult) {
	local, err := p.store.GetBill(ctx, remote.ID)
	if err != nil && !errors.Is(err, storage.ErrBillNotFound) {
		p.logger.Warn("Failed to read local bill", "bill_id", remote.ID, "error", err)
		return
	}
	if local != nil && local.IsDirty() {
		result.Kept++
		return
	}

	if remote.Deleted {
		if local == nil {
			return
		}
		if err := p.store.RemoveBill(ctx, remote.ID); err != nil {
			p.logger.Warn("Failed to remove deleted bill", "bill_id", remote.ID, "error", err)
			return
		}
		result.Removed++
		return
	}

	remote.SyncStatus = models.Synced
	if remote.ContentHash == "" {
		remote.ContentHash = models.ContentHash(remote)
	}
	if err := p.store.SaveBill(ctx, remote); err != nil {
		p.logger.Warn("Failed to save pulled bill", "bill_id", remote.ID, "error", err)
		return
	}
	result.Bills++
}

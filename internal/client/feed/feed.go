// Package feed turns local store writes into a stream of dirty-record snapshots.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// DefaultLimit максимальный размер одного снимка
const DefaultLimit = 100

// Source is the part of the local store the feed reads from.
type Source interface {
	storage.Notifier
	ListDirtyBooks(ctx context.Context, limit int) ([]*models.Book, error)
	ListDirtyBills(ctx context.Context, limit int) ([]*models.Bill, error)
	ListDirtyImages(ctx context.Context, limit int) ([]*models.Image, error)
}

// Batch снимок грязных записей одной коллекции.
// Заполнено только поле, соответствующее Entity.
type Batch struct {
	Entity models.EntityType
	Books  []*models.Book
	Bills  []*models.Bill
	Images []*models.Image
}

// Len returns the number of records in the batch.
func (b Batch) Len() int {
	return len(b.Books) + len(b.Bills) + len(b.Images)
}

// Options configures a Feed.
type Options struct {
	// Limit caps each snapshot; <= 0 means DefaultLimit
	Limit int
	// ResyncInterval re-queries the store periodically even without writes; 0 disables it
	ResyncInterval time.Duration
}

// Feed emits snapshots of dirty records reacting to local writes.
type Feed struct {
	src    Source
	logger *slog.Logger
	opts   Options
}

// New creates a Feed over src.
func New(src Source, opts Options, logger *slog.Logger) *Feed {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	return &Feed{src: src, opts: opts, logger: logger}
}

// WatchDirty subscribes to a collection. The first batch is the current
// snapshot; after that a new one follows every write to the collection.
// The channel is closed when ctx is done. Each call is an independent
// subscription, so a stopped consumer can simply call it again.
func (f *Feed) WatchDirty(ctx context.Context, entity models.EntityType) <-chan Batch {
	out := make(chan Batch)

	// подписываемся до первого запроса, чтобы не потерять запись между ними
	signals, cancel := f.src.Subscribe(entity)

	go func() {
		defer close(out)
		defer cancel()

		var tick <-chan time.Time
		if f.opts.ResyncInterval > 0 {
			ticker := time.NewTicker(f.opts.ResyncInterval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			batch, err := f.query(ctx, entity)
			if err != nil {
				f.logger.Warn("Failed to query dirty records", "entity", entity, "error", err)
			} else {
				select {
				case out <- batch:
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-signals:
			case <-tick:
			}
		}
	}()

	return out
}

// Books is WatchDirty for the book collection.
func (f *Feed) Books(ctx context.Context) <-chan Batch {
	return f.WatchDirty(ctx, models.EntityBook)
}

// Bills is WatchDirty for the bill collection.
func (f *Feed) Bills(ctx context.Context) <-chan Batch {
	return f.WatchDirty(ctx, models.EntityBill)
}

// Images is WatchDirty for the image collection.
func (f *Feed) Images(ctx context.Context) <-chan Batch {
	return f.WatchDirty(ctx, models.EntityImage)
}

// Snapshot returns the current dirty records of a collection once.
func (f *Feed) Snapshot(ctx context.Context, entity models.EntityType) (Batch, error) {
	return f.query(ctx, entity)
}

func (f *Feed) query(ctx context.Context, entity models.EntityType) (Batch, error) {
	batch := Batch{Entity: entity}
	var err error

	switch entity {
	case models.EntityBook:
		batch.Books, err = f.src.ListDirtyBooks(ctx, f.opts.Limit)
	case models.EntityBill:
		batch.Bills, err = f.src.ListDirtyBills(ctx, f.opts.Limit)
	case models.EntityImage:
		batch.Images, err = f.src.ListDirtyImages(ctx, f.opts.Limit)
	default:
		err = fmt.Errorf("unknown entity type %q", entity)
	}
	return batch, err
}

// Package sync uploads locally changed records and pulls remote changes.
package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/ledgersync/internal/client/feed"
	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// Config настройки цикла выгрузки
type Config struct {
	// Задержки старта циклов; на корректность не влияют
	BookDelay  time.Duration
	BillDelay  time.Duration
	ImageDelay time.Duration
	// CallTimeout ограничивает один запрос к серверу
	CallTimeout time.Duration
}

// DefaultConfig returns the default drain settings.
func DefaultConfig() Config {
	return Config{
		BookDelay:   time.Second,
		BillDelay:   2 * time.Second,
		ImageDelay:  3 * time.Second,
		CallTimeout: 30 * time.Second,
	}
}

// DrainResult итог выгрузки одной коллекции
type DrainResult struct {
	Pushed  int // отправлено и помечено synced
	Deleted int // удалено на сервере и локально
	Failed  int // ошибки, запись осталась грязной
	Skipped int // отложено до следующего цикла
}

func (r *DrainResult) add(o DrainResult) {
	r.Pushed += o.Pushed
	r.Deleted += o.Deleted
	r.Failed += o.Failed
	r.Skipped += o.Skipped
}

// Summary итог DrainOnce по всем коллекциям
type Summary struct {
	Books  DrainResult
	Bills  DrainResult
	Images DrainResult
}

// lane сериализует выгрузку одной коллекции.
// busy - флаг "выгрузка в процессе"; циклы пропускают снимок, если он выставлен,
// а предварительные проходы и DrainOnce дожидаются освобождения.
type lane struct {
	mu   sync.Mutex
	busy atomic.Bool
}

func (l *lane) tryEnter() bool {
	if l.busy.Load() || !l.mu.TryLock() {
		return false
	}
	l.busy.Store(true)
	return true
}

func (l *lane) enter(ctx context.Context) error {
	if l.mu.TryLock() {
		l.busy.Store(true)
		return nil
	}
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if l.mu.TryLock() {
				l.busy.Store(true)
				return nil
			}
		}
	}
}

func (l *lane) leave() {
	l.busy.Store(false)
	l.mu.Unlock()
}

// Trigger выгружает грязные записи на сервер: книги, затем записи, затем картинки.
// На каждую коллекцию работает отдельная горутина, читающая Change Feed.
type Trigger struct {
	api      RemoteAPI
	store    Store
	feed     *feed.Feed
	logger   *slog.Logger
	openFile func(path string) (io.ReadCloser, error)
	cancel   context.CancelFunc
	books    lane
	bills    lane
	images   lane
	wg       sync.WaitGroup
	cfg      Config
	mu       sync.Mutex
}

// NewTrigger creates a drain loop over the given feed.
func NewTrigger(remote RemoteAPI, store Store, f *feed.Feed, cfg Config, logger *slog.Logger) *Trigger {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultConfig().CallTimeout
	}
	return &Trigger{
		api:    remote,
		store:  store,
		feed:   f,
		cfg:    cfg,
		logger: logger,
		openFile: func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// Start launches one drain goroutine per collection. Calling Start on a
// running trigger is a no-op.
func (t *Trigger) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	t.logger.Info("Starting sync trigger")

	t.wg.Add(3)
	go t.run(ctx, models.EntityBook, t.cfg.BookDelay)
	go t.run(ctx, models.EntityBill, t.cfg.BillDelay)
	go t.run(ctx, models.EntityImage, t.cfg.ImageDelay)
}

// Stop cancels the drain goroutines and waits for them. A request already
// sent to the server finishes on its own timeout.
func (t *Trigger) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	t.wg.Wait()
	t.logger.Info("Sync trigger stopped")
}

// Running reports whether the drain goroutines are active.
func (t *Trigger) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// InFlight reports whether a drain of the collection is in progress.
func (t *Trigger) InFlight(entity models.EntityType) bool {
	if l := t.lane(entity); l != nil {
		return l.busy.Load()
	}
	return false
}

// DrainOnce synchronously drains books, then bills, then images.
func (t *Trigger) DrainOnce(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	var err error
	if sum.Books, err = t.flushBooks(ctx); err != nil {
		return sum, err
	}
	if sum.Bills, err = t.flushBills(ctx, false); err != nil {
		return sum, err
	}

	if err := t.images.enter(ctx); err != nil {
		return sum, err
	}
	defer t.images.leave()

	err = t.drainAll(ctx, models.EntityImage, func(b feed.Batch) DrainResult {
		return t.pushImages(ctx, b.Images)
	}, &sum.Images)
	return sum, err
}

func (t *Trigger) lane(entity models.EntityType) *lane {
	switch entity {
	case models.EntityBook:
		return &t.books
	case models.EntityBill:
		return &t.bills
	case models.EntityImage:
		return &t.images
	}
	return nil
}

func (t *Trigger) run(ctx context.Context, entity models.EntityType, delay time.Duration) {
	defer t.wg.Done()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}

	for batch := range t.feed.WatchDirty(ctx, entity) {
		t.handleBatch(ctx, batch)
	}
}

// handleBatch обрабатывает один снимок из Change Feed
func (t *Trigger) handleBatch(ctx context.Context, batch feed.Batch) DrainResult {
	if batch.Len() == 0 {
		t.logger.Debug("Nothing to sync", "entity", batch.Entity)
		return DrainResult{}
	}

	l := t.lane(batch.Entity)
	if l == nil || !l.tryEnter() {
		t.logger.Debug("Drain already in progress, skipping batch", "entity", batch.Entity, "size", batch.Len())
		return DrainResult{}
	}
	defer l.leave()

	var res DrainResult
	switch batch.Entity {
	case models.EntityBook:
		res = t.pushBooks(ctx, batch.Books)
	case models.EntityBill:
		if _, err := t.flushBooks(ctx); err != nil {
			t.logger.Warn("Book pre-pass failed, bills postponed", "size", batch.Len(), "error", err)
			return res
		}
		res = t.pushBills(ctx, batch.Bills)
	case models.EntityImage:
		if _, err := t.flushBills(ctx, true); err != nil {
			t.logger.Warn("Bill pre-pass failed, images postponed", "size", batch.Len(), "error", err)
			return res
		}
		res = t.pushImages(ctx, batch.Images)
	}

	t.logResult(batch.Entity, res)
	return res
}

// flushBooks выгружает все ожидающие книги, дождавшись текущего прохода по книгам
func (t *Trigger) flushBooks(ctx context.Context) (DrainResult, error) {
	var res DrainResult
	if err := t.books.enter(ctx); err != nil {
		return res, err
	}
	defer t.books.leave()

	err := t.drainAll(ctx, models.EntityBook, func(b feed.Batch) DrainResult {
		return t.pushBooks(ctx, b.Books)
	}, &res)
	return res, err
}

// flushBills выгружает ожидающие записи (с предварительной выгрузкой книг)
func (t *Trigger) flushBills(ctx context.Context, prepass bool) (DrainResult, error) {
	var res DrainResult
	if prepass {
		if _, err := t.flushBooks(ctx); err != nil {
			return res, err
		}
	}

	if err := t.bills.enter(ctx); err != nil {
		return res, err
	}
	defer t.bills.leave()

	err := t.drainAll(ctx, models.EntityBill, func(b feed.Batch) DrainResult {
		return t.pushBills(ctx, b.Bills)
	}, &res)
	return res, err
}

// drainAll повторяет снимки, пока они не опустеют или проход перестанет продвигаться
func (t *Trigger) drainAll(ctx context.Context, entity models.EntityType, push func(feed.Batch) DrainResult, total *DrainResult) error {
	for {
		batch, err := t.feed.Snapshot(ctx, entity)
		if err != nil {
			return fmt.Errorf("failed to list dirty %ss: %w", entity, err)
		}
		if batch.Len() == 0 {
			return nil
		}

		res := push(batch)
		total.add(res)
		if res.Pushed+res.Deleted < batch.Len() || ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// callCtx отвязывает запрос от отмены цикла: начатый запрос не прерывается Stop
func (t *Trigger) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), t.cfg.CallTimeout)
}

func (t *Trigger) pushBooks(ctx context.Context, books []*models.Book) DrainResult {
	var res DrainResult
	for _, book := range books {
		if ctx.Err() != nil {
			break
		}

		callCtx, cancel := t.callCtx(ctx)
		if book.Deleted {
			err := t.api.DeleteBook(callCtx, book.ID)
			cancel()
			if err != nil && !isGone(err) {
				t.logger.Warn("Failed to delete book on server", "book_id", book.ID, "error", err)
				res.Failed++
				continue
			}
			if err := t.store.RemoveBook(ctx, book.ID); err != nil {
				t.logger.Error("Failed to remove deleted book", "book_id", book.ID, "error", err)
				res.Failed++
				continue
			}
			res.Deleted++
			continue
		}

		err := t.api.PutBook(callCtx, book)
		cancel()
		if err != nil {
			t.logger.Warn("Failed to push book", "book_id", book.ID, "error", err)
			res.Failed++
			continue
		}

		marked, err := t.store.MarkBookSynced(ctx, book.ID, book.UpdatedAt)
		if err != nil {
			t.logger.Error("Failed to mark book synced", "book_id", book.ID, "error", err)
			res.Failed++
			continue
		}
		if !marked {
			t.logger.Debug("Book changed during upload, will resend", "book_id", book.ID)
			res.Skipped++
			continue
		}
		res.Pushed++
	}
	return res
}

func (t *Trigger) pushBills(ctx context.Context, bills []*models.Bill) DrainResult {
	var res DrainResult
	pendingBook := make(map[string]bool)

	for _, bill := range bills {
		if ctx.Err() != nil {
			break
		}

		if bill.Deleted {
			callCtx, cancel := t.callCtx(ctx)
			err := t.api.DeleteBill(callCtx, bill.ID)
			cancel()
			if err != nil && !isGone(err) {
				t.logger.Warn("Failed to delete bill on server", "bill_id", bill.ID, "error", err)
				res.Failed++
				continue
			}
			if err := t.store.RemoveBill(ctx, bill.ID); err != nil {
				t.logger.Error("Failed to remove deleted bill", "bill_id", bill.ID, "error", err)
				res.Failed++
				continue
			}
			res.Deleted++
			continue
		}

		// книга не ушла на сервер даже после предварительного прохода
		if t.bookPending(ctx, bill.BookID, pendingBook) {
			t.logger.Debug("Book of bill is not synced yet, postponing", "bill_id", bill.ID, "book_id", bill.BookID)
			res.Skipped++
			continue
		}

		callCtx, cancel := t.callCtx(ctx)
		err := t.api.PutBill(callCtx, bill)
		cancel()
		if err != nil {
			t.logger.Warn("Failed to push bill", "bill_id", bill.ID, "error", err)
			res.Failed++
			continue
		}

		marked, err := t.store.MarkBillSynced(ctx, bill.ID, bill.UpdatedAt)
		if err != nil {
			t.logger.Error("Failed to mark bill synced", "bill_id", bill.ID, "error", err)
			res.Failed++
			continue
		}
		if !marked {
			res.Skipped++
			continue
		}
		res.Pushed++
	}
	return res
}

func (t *Trigger) bookPending(ctx context.Context, bookID string, cache map[string]bool) bool {
	if pending, ok := cache[bookID]; ok {
		return pending
	}

	book, err := t.store.GetBook(ctx, bookID)
	pending := false
	switch {
	case errors.Is(err, storage.ErrBookNotFound):
		// книга известна только серверу
	case err != nil:
		t.logger.Warn("Failed to check book of bill", "book_id", bookID, "error", err)
		pending = true
	default:
		pending = book.IsDirty()
	}

	cache[bookID] = pending
	return pending
}

// billPending сообщает, что запись ещё не на сервере и загрузка вложения получит 404
func (t *Trigger) billPending(ctx context.Context, billID string, cache map[string]bool) bool {
	if pending, ok := cache[billID]; ok {
		return pending
	}

	bill, err := t.store.GetBill(ctx, billID)
	pending := false
	switch {
	case errors.Is(err, storage.ErrBillNotFound):
		// запись известна только серверу
	case err != nil:
		t.logger.Warn("Failed to check bill of image", "bill_id", billID, "error", err)
		pending = true
	default:
		pending = bill.IsDirty()
	}

	cache[billID] = pending
	return pending
}

func (t *Trigger) pushImages(ctx context.Context, images []*models.Image) DrainResult {
	var res DrainResult
	pendingBill := make(map[string]bool)

	for _, img := range images {
		if ctx.Err() != nil {
			break
		}

		if img.Deleted {
			callCtx, cancel := t.callCtx(ctx)
			err := t.api.DeleteImage(callCtx, img.ID)
			cancel()
			if err != nil && !isGone(err) {
				t.logger.Warn("Failed to delete image on server", "image_id", img.ID, "error", err)
				res.Failed++
				continue
			}
			if err := t.store.RemoveImage(ctx, img.ID); err != nil {
				t.logger.Error("Failed to remove deleted image", "image_id", img.ID, "error", err)
				res.Failed++
				continue
			}
			if img.LocalPath != "" {
				if err := os.Remove(img.LocalPath); err != nil && !errors.Is(err, os.ErrNotExist) {
					t.logger.Debug("Failed to remove image file", "path", img.LocalPath, "error", err)
				}
			}
			res.Deleted++
			continue
		}

		if t.billPending(ctx, img.BillID, pendingBill) {
			t.logger.Debug("Bill of image is not synced yet, postponing", "image_id", img.ID, "bill_id", img.BillID)
			res.Skipped++
			continue
		}

		if err := t.uploadImage(ctx, img); err != nil {
			t.logger.Warn("Failed to upload image", "image_id", img.ID, "error", err)
			res.Failed++
			continue
		}

		marked, err := t.store.MarkImageSynced(ctx, img.ID)
		if err != nil {
			t.logger.Error("Failed to mark image synced", "image_id", img.ID, "error", err)
			res.Failed++
			continue
		}
		if !marked {
			res.Skipped++
			continue
		}
		res.Pushed++
	}
	return res
}

func (t *Trigger) uploadImage(ctx context.Context, img *models.Image) error {
	f, err := t.openFile(img.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	callCtx, cancel := t.callCtx(ctx)
	defer cancel()
	return t.api.UploadImage(callCtx, img, f)
}

func (t *Trigger) logResult(entity models.EntityType, res DrainResult) {
	t.logger.Info("Drain finished",
		"entity", entity,
		"pushed", res.Pushed,
		"deleted", res.Deleted,
		"failed", res.Failed,
		"skipped", res.Skipped)
}

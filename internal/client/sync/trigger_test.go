package sync

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/client/feed"
	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/client/storage/boltdb"
	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// callLog записывает порядок обращений к серверу
type callLog struct {
	calls []string
	mu    sync.Mutex
}

func (c *callLog) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, s)
}

func (c *callLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// okRemote возвращает мок, который принимает все запросы и пишет их в log
func okRemote(log *callLog) *RemoteAPIMock {
	return &RemoteAPIMock{
		PutBookFunc: func(ctx context.Context, book *models.Book) error {
			log.add("put book " + book.ID)
			return nil
		},
		DeleteBookFunc: func(ctx context.Context, id string) error {
			log.add("delete book " + id)
			return nil
		},
		PutBillFunc: func(ctx context.Context, bill *models.Bill) error {
			log.add("put bill " + bill.ID)
			return nil
		},
		DeleteBillFunc: func(ctx context.Context, id string) error {
			log.add("delete bill " + id)
			return nil
		},
		UploadImageFunc: func(ctx context.Context, image *models.Image, content io.Reader) error {
			log.add("upload image " + image.ID)
			return nil
		},
		DeleteImageFunc: func(ctx context.Context, id string) error {
			log.add("delete image " + id)
			return nil
		},
	}
}

type testEnv struct {
	store *boltdb.Storage
	feed  *feed.Feed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return &testEnv{
		store: store,
		feed:  feed.New(store, feed.Options{}, setupTestLogger()),
	}
}

func (e *testEnv) trigger(remote RemoteAPI, cfg Config) *Trigger {
	return NewTrigger(remote, e.store, e.feed, cfg, setupTestLogger())
}

func (e *testEnv) addBook(t *testing.T, id string) *models.Book {
	t.Helper()
	now := time.Now()
	b := &models.Book{ID: id, Name: "book " + id, CreatedAt: now}
	b.Touch(now)
	require.NoError(t, e.store.SaveBook(context.Background(), b))
	return b
}

func (e *testEnv) addBill(t *testing.T, id, bookID string) *models.Bill {
	t.Helper()
	now := time.Now()
	b := &models.Bill{ID: id, BookID: bookID, Money: 100, Type: models.BillTypeExpenditure, Time: now, CreatedAt: now}
	b.Touch(now)
	require.NoError(t, e.store.SaveBill(context.Background(), b))
	return b
}

func (e *testEnv) bookStatus(t *testing.T, id string) models.SyncStatus {
	t.Helper()
	b, err := e.store.GetBook(context.Background(), id)
	require.NoError(t, err)
	return b.SyncStatus
}

func (e *testEnv) billStatus(t *testing.T, id string) models.SyncStatus {
	t.Helper()
	b, err := e.store.GetBill(context.Background(), id)
	require.NoError(t, err)
	return b.SyncStatus
}

func noDelays() Config {
	return Config{CallTimeout: 5 * time.Second}
}

func TestDrainOnce_BooksBeforeBills(t *testing.T) {
	env := newTestEnv(t)
	log := &callLog{}
	tr := env.trigger(okRemote(log), noDelays())

	env.addBill(t, "x1", "b1")
	env.addBook(t, "b1")

	sum, err := tr.DrainOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"put book b1", "put bill x1"}, log.list())
	assert.Equal(t, 1, sum.Books.Pushed)
	assert.Equal(t, 1, sum.Bills.Pushed)
	assert.Equal(t, models.Synced, env.bookStatus(t, "b1"))
	assert.Equal(t, models.Synced, env.billStatus(t, "x1"))
}

func TestDrainOnce_OfflineBookThenReconnect(t *testing.T) {
	env := newTestEnv(t)
	log := &callLog{}
	remote := okRemote(log)

	online := false
	remote.PutBookFunc = func(ctx context.Context, book *models.Book) error {
		if !online {
			return errors.New("dial tcp: connection refused")
		}
		log.add("put book " + book.ID)
		return nil
	}
	tr := env.trigger(remote, noDelays())

	env.addBook(t, "b1")
	env.addBill(t, "x1", "b1")

	sum, err := tr.DrainOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Books.Failed)
	// запись не уходит раньше своей книги
	assert.Equal(t, 1, sum.Bills.Skipped)
	assert.Empty(t, remote.PutBillCalls())
	assert.Equal(t, models.NotSynced, env.bookStatus(t, "b1"))
	assert.Equal(t, models.NotSynced, env.billStatus(t, "x1"))

	online = true
	_, err = tr.DrainOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"put book b1", "put bill x1"}, log.list())
	assert.Equal(t, models.Synced, env.bookStatus(t, "b1"))
	assert.Equal(t, models.Synced, env.billStatus(t, "x1"))
}

func TestTrigger_BillPrePassFlushesBooks(t *testing.T) {
	env := newTestEnv(t)
	log := &callLog{}
	// цикл книг не стартует за время теста, книгу выгружает только предварительный проход
	cfg := noDelays()
	cfg.BookDelay = time.Hour
	cfg.ImageDelay = time.Hour
	tr := env.trigger(okRemote(log), cfg)

	env.addBook(t, "b1")
	env.addBill(t, "x1", "b1")

	tr.Start(context.Background())
	defer tr.Stop()

	require.Eventually(t, func() bool {
		b, err := env.store.GetBill(context.Background(), "x1")
		return err == nil && b.SyncStatus == models.Synced
	}, 3*time.Second, 10*time.Millisecond)

	calls := log.list()
	require.GreaterOrEqual(t, len(calls), 2)
	assert.Equal(t, "put book b1", calls[0])
	assert.Contains(t, calls, "put bill x1")
	assert.Equal(t, models.Synced, env.bookStatus(t, "b1"))
}

func TestTrigger_FailedBillRetriedOnNextEmission(t *testing.T) {
	env := newTestEnv(t)
	log := &callLog{}
	remote := okRemote(log)

	var mu sync.Mutex
	failures := 1
	remote.PutBillFunc = func(ctx context.Context, bill *models.Bill) error {
		mu.Lock()
		defer mu.Unlock()
		if bill.ID == "x1" && failures > 0 {
			failures--
			return &api.Error{Code: api.CodeInternal, Msg: "db is down"}
		}
		log.add("put bill " + bill.ID)
		return nil
	}

	cfg := noDelays()
	cfg.ImageDelay = time.Hour
	tr := env.trigger(remote, cfg)

	env.addBook(t, "b1")
	env.addBill(t, "x1", "b1")

	tr.Start(context.Background())
	defer tr.Stop()

	// первая попытка провалилась, запись осталась грязной
	require.Eventually(t, func() bool {
		return len(remote.PutBillCalls()) >= 1
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, models.NotSynced, env.billStatus(t, "x1"))

	// любая следующая запись порождает новый снимок, и x1 уходит повторно
	env.addBill(t, "x2", "b1")

	require.Eventually(t, func() bool {
		b1, err1 := env.store.GetBill(context.Background(), "x1")
		b2, err2 := env.store.GetBill(context.Background(), "x2")
		return err1 == nil && err2 == nil && b1.SyncStatus == models.Synced && b2.SyncStatus == models.Synced
	}, 3*time.Second, 10*time.Millisecond)
}

func TestDrainOnce_SoftDeleteConvergence(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantRemove bool
	}{
		{name: "remote delete succeeds", wantRemove: true},
		{name: "already gone on server", deleteErr: &api.Error{Code: api.CodeNotFound, Msg: "not found"}, wantRemove: true},
		{name: "remote delete fails", deleteErr: errors.New("timeout"), wantRemove: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()
			remote := okRemote(&callLog{})
			remote.DeleteBillFunc = func(ctx context.Context, id string) error { return tt.deleteErr }
			tr := env.trigger(remote, noDelays())

			book := env.addBook(t, "b1")
			bill := env.addBill(t, "x1", "b1")
			_, err := tr.DrainOnce(ctx)
			require.NoError(t, err)

			// мягкое удаление: запись сразу пропадает из активных
			bill.Deleted = true
			bill.Touch(time.Now())
			require.NoError(t, env.store.SaveBill(ctx, bill))
			active, err := env.store.ListBills(ctx, book.ID)
			require.NoError(t, err)
			assert.Empty(t, active)

			sum, err := tr.DrainOnce(ctx)
			require.NoError(t, err)
			require.Len(t, remote.DeleteBillCalls(), 1)
			assert.Equal(t, "x1", remote.DeleteBillCalls()[0].Id)

			_, err = env.store.GetBill(ctx, "x1")
			if tt.wantRemove {
				assert.ErrorIs(t, err, storage.ErrBillNotFound)
				assert.Equal(t, 1, sum.Bills.Deleted)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, sum.Bills.Failed)
			}
		})
	}
}

func TestDrainOnce_DeletedBookRemovedAfterRemoteDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	log := &callLog{}
	tr := env.trigger(okRemote(log), noDelays())

	book := env.addBook(t, "b1")
	book.Deleted = true
	book.Touch(time.Now())
	require.NoError(t, env.store.SaveBook(ctx, book))

	sum, err := tr.DrainOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Books.Deleted)
	assert.Equal(t, []string{"delete book b1"}, log.list())

	_, err = env.store.GetBook(ctx, "b1")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestPushBooks_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	log := &callLog{}
	tr := env.trigger(okRemote(log), noDelays())

	env.addBook(t, "b1")
	batch, err := env.feed.Snapshot(ctx, models.EntityBook)
	require.NoError(t, err)

	// одна и та же запись может прийти в нескольких снимках
	first := tr.pushBooks(ctx, batch.Books)
	second := tr.pushBooks(ctx, batch.Books)

	assert.Equal(t, 1, first.Pushed)
	assert.Equal(t, 1, second.Pushed)
	assert.Equal(t, []string{"put book b1", "put book b1"}, log.list())
	assert.Equal(t, models.Synced, env.bookStatus(t, "b1"))
}

func TestPushBooks_MutationDuringUploadStaysDirty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	remote := okRemote(&callLog{})
	remote.PutBookFunc = func(ctx context.Context, book *models.Book) error {
		// пользователь меняет книгу, пока запрос в пути
		b, err := env.store.GetBook(ctx, book.ID)
		require.NoError(t, err)
		b.Name = "renamed"
		b.Touch(b.UpdatedAt.Add(time.Second))
		require.NoError(t, env.store.SaveBook(ctx, b))
		return nil
	}
	tr := env.trigger(remote, noDelays())

	env.addBook(t, "b1")
	sum, err := tr.DrainOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, sum.Books.Pushed)
	assert.Equal(t, 1, sum.Books.Skipped)
	assert.Equal(t, models.NotSynced, env.bookStatus(t, "b1"))
}

func TestHandleBatch_ReentrancyGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	remote := okRemote(&callLog{})
	remote.PutBookFunc = func(ctx context.Context, book *models.Book) error {
		started <- struct{}{}
		<-release
		return nil
	}
	tr := env.trigger(remote, noDelays())

	env.addBook(t, "b1")
	batch, err := env.feed.Snapshot(ctx, models.EntityBook)
	require.NoError(t, err)

	done := make(chan DrainResult)
	go func() {
		done <- tr.handleBatch(ctx, batch)
	}()

	<-started
	assert.True(t, tr.InFlight(models.EntityBook))

	// второй снимок во время выгрузки пропускается без обращений к серверу
	res := tr.handleBatch(ctx, batch)
	assert.Equal(t, DrainResult{}, res)
	assert.Len(t, remote.PutBookCalls(), 1)

	close(release)
	first := <-done
	assert.Equal(t, 1, first.Pushed)
	assert.False(t, tr.InFlight(models.EntityBook))
}

func TestHandleBatch_EmptyBatch(t *testing.T) {
	env := newTestEnv(t)
	remote := &RemoteAPIMock{}
	tr := env.trigger(remote, noDelays())

	res := tr.handleBatch(context.Background(), feed.Batch{Entity: models.EntityBook})
	assert.Equal(t, DrainResult{}, res)
}

func TestDrainOnce_Images(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	dir := t.TempDir()

	keepPath := filepath.Join(dir, "keep.jpg")
	dropPath := filepath.Join(dir, "drop.jpg")
	require.NoError(t, os.WriteFile(keepPath, []byte("jpeg-data"), 0600))
	require.NoError(t, os.WriteFile(dropPath, []byte("old"), 0600))

	var uploaded string
	remote := okRemote(&callLog{})
	remote.UploadImageFunc = func(ctx context.Context, image *models.Image, content io.Reader) error {
		data, err := io.ReadAll(content)
		require.NoError(t, err)
		uploaded = string(data)
		return nil
	}
	tr := env.trigger(remote, noDelays())

	now := time.Now()
	require.NoError(t, env.store.SaveImage(ctx, &models.Image{ID: "i1", BillID: "x1", LocalPath: keepPath, CreatedAt: now}))
	require.NoError(t, env.store.SaveImage(ctx, &models.Image{ID: "i2", BillID: "x1", LocalPath: dropPath, CreatedAt: now, Deleted: true}))

	sum, err := tr.DrainOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Images.Pushed)
	assert.Equal(t, 1, sum.Images.Deleted)
	assert.Equal(t, "jpeg-data", uploaded)

	img, err := env.store.GetImage(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.Synced, img.SyncStatus)

	_, err = env.store.GetImage(ctx, "i2")
	assert.ErrorIs(t, err, storage.ErrImageNotFound)
	_, err = os.Stat(dropPath)
	assert.True(t, os.IsNotExist(err))
}

func TestDrainOnce_MissingImageFileStaysDirty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	tr := env.trigger(okRemote(&callLog{}), noDelays())

	require.NoError(t, env.store.SaveImage(ctx, &models.Image{ID: "i1", LocalPath: filepath.Join(t.TempDir(), "nope.jpg")}))

	sum, err := tr.DrainOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Images.Failed)

	img, err := env.store.GetImage(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, img.IsDirty())
}

func TestDrainOnce_ImageWaitsForFailedBill(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.addBook(t, "b1")
	env.addBill(t, "x1", "b1")
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-data"), 0600))
	require.NoError(t, env.store.SaveImage(ctx, &models.Image{ID: "i1", BillID: "x1", LocalPath: path, CreatedAt: time.Now()}))

	remote := okRemote(&callLog{})
	remote.PutBillFunc = func(ctx context.Context, bill *models.Bill) error {
		return errors.New("server unavailable")
	}
	tr := env.trigger(remote, noDelays())

	sum, err := tr.DrainOnce(ctx)
	require.NoError(t, err)
	assert.Empty(t, remote.UploadImageCalls())
	assert.Equal(t, 1, sum.Images.Skipped)

	img, err := env.store.GetImage(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, img.IsDirty())

	// запись ушла, картинка загружается следующим проходом
	remote.PutBillFunc = func(ctx context.Context, bill *models.Bill) error { return nil }
	sum, err = tr.DrainOnce(ctx)
	require.NoError(t, err)
	assert.Len(t, remote.UploadImageCalls(), 1)
	assert.Equal(t, 1, sum.Images.Pushed)
}

func TestHandleBatch_PrePassFailureIsLogged(t *testing.T) {
	env := newTestEnv(t)
	bill := env.addBill(t, "x1", "b1")
	img := &models.Image{ID: "i1", BillID: "x1"}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	remote := okRemote(&callLog{})
	tr := NewTrigger(remote, env.store, env.feed, noDelays(), logger)

	require.NoError(t, env.store.Close())

	res := tr.handleBatch(context.Background(), feed.Batch{Entity: models.EntityBill, Bills: []*models.Bill{bill}})
	assert.Equal(t, DrainResult{}, res)
	assert.Contains(t, logs.String(), "Book pre-pass failed")

	res = tr.handleBatch(context.Background(), feed.Batch{Entity: models.EntityImage, Images: []*models.Image{img}})
	assert.Equal(t, DrainResult{}, res)
	assert.Contains(t, logs.String(), "Bill pre-pass failed")

	assert.Empty(t, remote.PutBillCalls())
	assert.Empty(t, remote.UploadImageCalls())
}

func TestTrigger_StartStop(t *testing.T) {
	env := newTestEnv(t)
	tr := env.trigger(okRemote(&callLog{}), DefaultConfig())

	assert.False(t, tr.Running())
	tr.Start(context.Background())
	tr.Start(context.Background())
	assert.True(t, tr.Running())

	stopped := make(chan struct{})
	go func() {
		tr.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	assert.False(t, tr.Running())
	tr.Stop()
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second, cfg.BookDelay)
	assert.Equal(t, 2*time.Second, cfg.BillDelay)
	assert.Equal(t, 3*time.Second, cfg.ImageDelay)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
}

package receiver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/client/storage/boltdb"
	"github.com/iudanet/ledgersync/internal/models"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newStore(t *testing.T) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "receiver.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func payload(t *testing.T, kind, bookID, sender string, content interface{}) []byte {
	t.Helper()
	msg, err := models.NewSyncMessage(kind, bookID, sender, content)
	require.NoError(t, err)
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return data
}

// recordingHandler запоминает полученные сообщения
type recordingHandler struct {
	err   error
	kinds map[string]bool
	got   []models.SyncMessage
	mu    sync.Mutex
}

func (h *recordingHandler) CanHandle(kind string) bool { return h.kinds[kind] }

func (h *recordingHandler) HandleMessage(ctx context.Context, msg models.SyncMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.got = append(h.got, msg)
	return h.err
}

func TestReceiver_RegisterUnregister(t *testing.T) {
	r := New(newStore(t), nil, Options{}, setupTestLogger())
	h := &recordingHandler{kinds: map[string]bool{"PING": true}}

	r.Register(h)
	r.Register(h)
	assert.Equal(t, 1, r.Len())

	r.OnMessage(context.Background(), payload(t, "PING", "", "other", "x"))
	assert.Len(t, h.got, 1)

	r.Unregister(h)
	assert.Equal(t, 0, r.Len())
	r.OnMessage(context.Background(), payload(t, "PING", "", "other", "x"))
	assert.Len(t, h.got, 1)

	r.RegisterDefaults()
	r.RegisterDefaults()
	assert.Equal(t, 8, r.Len())
	r.UnregisterAll()
	assert.Equal(t, 0, r.Len())
}

func TestDefaultHandlers_OnePerKind(t *testing.T) {
	handlers := defaultHandlers(newStore(t), setupTestLogger())
	kinds := []string{
		models.KindAddBook, models.KindUpdateBook, models.KindDeleteBook,
		models.KindAddBill, models.KindUpdateBill, models.KindDeleteBill,
		models.KindUploadImage, models.KindDeleteImage,
	}
	require.Len(t, handlers, len(kinds))

	for _, kind := range kinds {
		matched := 0
		for _, h := range handlers {
			if h.CanHandle(kind) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, kind)
	}
	for _, h := range handlers {
		assert.False(t, h.CanHandle(models.AckKind(models.KindAddBook)))
	}
}

func TestReceiver_DispatchesToAllMatchingHandlers(t *testing.T) {
	r := New(newStore(t), nil, Options{}, setupTestLogger())
	failing := &recordingHandler{kinds: map[string]bool{"X": true}, err: errors.New("boom")}
	ok := &recordingHandler{kinds: map[string]bool{"X": true}}
	other := &recordingHandler{kinds: map[string]bool{"Y": true}}
	r.Register(failing)
	r.Register(ok)
	r.Register(other)

	r.OnMessage(context.Background(), payload(t, "X", "", "", "1"))

	// ошибка одного обработчика не мешает остальным
	assert.Len(t, failing.got, 1)
	assert.Len(t, ok.got, 1)
	assert.Empty(t, other.got)
}

func TestReceiver_DropsBadPayloads(t *testing.T) {
	r := New(newStore(t), nil, Options{}, setupTestLogger())
	h := &recordingHandler{kinds: map[string]bool{"": true, "X": true}}
	r.Register(h)

	r.OnMessage(context.Background(), []byte("not json"))
	r.OnMessage(context.Background(), []byte(`{"id":"1"}`))
	assert.Empty(t, h.got)
}

func TestReceiver_IgnoresOwnMessagesAndAcks(t *testing.T) {
	r := New(newStore(t), nil, Options{DeviceID: "dev-1"}, setupTestLogger())
	h := &recordingHandler{kinds: map[string]bool{"X": true, "X_ACK": true}}
	r.Register(h)

	r.OnMessage(context.Background(), payload(t, "X", "", "dev-1", "1"))
	r.OnMessage(context.Background(), payload(t, "X_ACK", "", "dev-2", "1"))
	assert.Empty(t, h.got)

	r.OnMessage(context.Background(), payload(t, "X", "", "dev-2", "1"))
	assert.Len(t, h.got, 1)
}

func TestReceiver_SendsAcks(t *testing.T) {
	pub := &PublisherMock{
		SendFunc: func(msg models.SyncMessage) bool { return true },
	}
	store := newStore(t)
	r := New(store, pub, Options{DeviceID: "dev-1", AckEnabled: true}, setupTestLogger())
	r.RegisterDefaults()

	data := payload(t, models.KindAddBook, "b1", "dev-2", &models.Book{ID: "b1", Name: "shared"})
	var original models.SyncMessage
	require.NoError(t, json.Unmarshal(data, &original))

	r.OnMessage(context.Background(), data)

	require.Len(t, pub.SendCalls(), 1)
	ack := pub.SendCalls()[0].Msg
	assert.Equal(t, "ADD_BOOK_ACK", ack.Type)
	assert.Equal(t, "dev-1", ack.SenderID)

	var content string
	require.NoError(t, json.Unmarshal(ack.Content, &content))
	assert.Equal(t, original.ID, content)

	// при ошибке обработки подтверждение не отправляется
	r.OnMessage(context.Background(), payload(t, models.KindAddBook, "b1", "dev-2", "not a book"))
	assert.Len(t, pub.SendCalls(), 1)
}

func TestBookHandler_UpsertWritesSynced(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	r := New(store, nil, Options{}, setupTestLogger())
	r.RegisterDefaults()

	r.OnMessage(ctx, payload(t, models.KindAddBook, "b1", "srv", &models.Book{ID: "b1", Name: "shared", Members: []string{"u1", "u2"}}))

	got, err := store.GetBook(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Name)
	assert.Equal(t, models.Synced, got.SyncStatus)

	r.OnMessage(ctx, payload(t, models.KindUpdateBook, "b1", "srv", &models.Book{ID: "b1", Name: "renamed"}))
	got, err = store.GetBook(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
}

func TestBookHandler_KeepsNewerLocalEdit(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	r := New(store, nil, Options{}, setupTestLogger())
	r.RegisterDefaults()

	now := time.Now()
	local := &models.Book{ID: "b1", Name: "local"}
	local.Touch(now)
	require.NoError(t, store.SaveBook(ctx, local))

	r.OnMessage(ctx, payload(t, models.KindUpdateBook, "b1", "srv", &models.Book{ID: "b1", Name: "older", UpdatedAt: now.Add(-time.Minute)}))
	got, err := store.GetBook(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "local", got.Name)
	assert.True(t, got.IsDirty())

	r.OnMessage(ctx, payload(t, models.KindUpdateBook, "b1", "srv", &models.Book{ID: "b1", Name: "newer", UpdatedAt: now.Add(time.Minute)}))
	got, err = store.GetBook(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "newer", got.Name)
	assert.Equal(t, models.Synced, got.SyncStatus)
}

func TestBookHandler_RemoteDeleteRemovesBookAndBills(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	r := New(store, nil, Options{}, setupTestLogger())
	r.RegisterDefaults()

	require.NoError(t, store.SaveBook(ctx, &models.Book{ID: "b1", SyncStatus: models.Synced}))
	require.NoError(t, store.SaveBill(ctx, &models.Bill{ID: "x1", BookID: "b1", SyncStatus: models.Synced}))

	r.OnMessage(ctx, payload(t, models.KindDeleteBook, "b1", "srv", "b1"))

	_, err := store.GetBook(ctx, "b1")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
	_, err = store.GetBill(ctx, "x1")
	assert.ErrorIs(t, err, storage.ErrBillNotFound)

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBillHandler(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	r := New(store, nil, Options{}, setupTestLogger())
	r.RegisterDefaults()

	bill := &models.Bill{ID: "x1", Money: 990, Type: models.BillTypeExpenditure, Category: "coffee"}
	r.OnMessage(ctx, payload(t, models.KindAddBill, "b1", "srv", bill))

	got, err := store.GetBill(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.BookID, "book id taken from envelope")
	assert.Equal(t, models.Synced, got.SyncStatus)
	assert.NotEmpty(t, got.ContentHash)

	r.OnMessage(ctx, payload(t, models.KindDeleteBill, "b1", "srv", map[string]string{"_id": "x1"}))
	_, err = store.GetBill(ctx, "x1")
	assert.ErrorIs(t, err, storage.ErrBillNotFound)
}

func TestImageHandler(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	r := New(store, nil, Options{}, setupTestLogger())
	r.RegisterDefaults()

	r.OnMessage(ctx, payload(t, models.KindUploadImage, "b1", "srv", &models.Image{ID: "i1", BillID: "x1", LocalPath: "/elsewhere/i1.jpg"}))

	img, err := store.GetImage(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, models.Synced, img.SyncStatus)
	assert.Empty(t, img.LocalPath)
	assert.Equal(t, "b1", img.BookID)

	r.OnMessage(ctx, payload(t, models.KindDeleteImage, "b1", "srv", "i1"))
	_, err = store.GetImage(ctx, "i1")
	assert.ErrorIs(t, err, storage.ErrImageNotFound)
}

func TestReceiver_ConcurrentRegistration(t *testing.T) {
	r := New(newStore(t), nil, Options{}, setupTestLogger())
	data := payload(t, models.KindDeleteBill, "b1", "srv", "missing")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.RegisterDefaults()
			r.UnregisterAll()
		}()
		go func() {
			defer wg.Done()
			r.OnMessage(context.Background(), data)
		}()
	}
	wg.Wait()
}

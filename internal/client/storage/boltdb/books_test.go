package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

func TestBooks_SaveGetList(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	now := time.Now()

	b1 := &models.Book{ID: "b1", Name: "home", CreatedAt: now, UpdatedAt: now, Members: []string{"u2"}}
	b2 := &models.Book{ID: "b2", Name: "trip", CreatedAt: now.Add(time.Second), UpdatedAt: now, Deleted: true}
	require.NoError(t, store.SaveBook(ctx, b1))
	require.NoError(t, store.SaveBook(ctx, b2))

	got, err := store.GetBook(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "home", got.Name)
	assert.Equal(t, []string{"u2"}, got.Members)

	// удалённая книга доступна по ID, но не попадает в активный список
	deleted, err := store.GetBook(ctx, "b2")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	list, err := store.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b1", list[0].ID)

	_, err = store.GetBook(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

func TestBooks_ListDirty(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	base := time.Now()

	for i, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.SaveBook(ctx, &models.Book{ID: id, UpdatedAt: base.Add(time.Duration(i) * time.Second)}))
	}
	require.NoError(t, store.SaveBook(ctx, &models.Book{ID: "synced", UpdatedAt: base, SyncStatus: models.Synced}))
	require.NoError(t, store.SaveBook(ctx, &models.Book{ID: "gone", UpdatedAt: base.Add(time.Hour), Deleted: true}))

	dirty, err := store.ListDirtyBooks(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(dirty))
	for _, b := range dirty {
		ids = append(ids, b.ID)
	}
	// порядок по времени изменения, удалённые тоже требуют отправки
	assert.Equal(t, []string{"c", "a", "b", "gone"}, ids)

	limited, err := store.ListDirtyBooks(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestBooks_MarkSynced(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	t0 := time.Now()

	book := &models.Book{ID: "b1", Name: "home", UpdatedAt: t0}
	require.NoError(t, store.SaveBook(ctx, book))

	t.Run("unchanged row is marked", func(t *testing.T) {
		ok, err := store.MarkBookSynced(ctx, "b1", t0)
		require.NoError(t, err)
		assert.True(t, ok)

		got, err := store.GetBook(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, models.Synced, got.SyncStatus)
	})

	t.Run("row changed during upload stays dirty", func(t *testing.T) {
		book.Name = "renamed"
		book.Touch(t0.Add(time.Second))
		require.NoError(t, store.SaveBook(ctx, book))

		ok, err := store.MarkBookSynced(ctx, "b1", t0)
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.GetBook(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, models.NotSynced, got.SyncStatus)
	})

	t.Run("missing row", func(t *testing.T) {
		ok, err := store.MarkBookSynced(ctx, "nope", t0)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBooks_Remove(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveBook(ctx, &models.Book{ID: "b1"}))
	require.NoError(t, store.RemoveBook(ctx, "b1"))
	require.NoError(t, store.RemoveBook(ctx, "b1"))

	_, err := store.GetBook(ctx, "b1")
	assert.ErrorIs(t, err, storage.ErrBookNotFound)
}

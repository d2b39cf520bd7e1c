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

func TestBills_ListAndHash(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	bills := []*models.Bill{
		{ID: "1", BookID: "b1", Money: 100, Time: base, Category: "food"},
		{ID: "2", BookID: "b1", Money: 200, Time: base.Add(time.Hour), Category: "taxi"},
		{ID: "3", BookID: "b2", Money: 300, Time: base},
		{ID: "4", BookID: "b1", Money: 400, Time: base, Deleted: true},
	}
	for _, b := range bills {
		b.Touch(base)
		require.NoError(t, store.SaveBill(ctx, b))
	}

	list, err := store.ListBills(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID, "newest first")
	assert.Equal(t, "1", list[1].ID)

	found, err := store.FindBillByHash(ctx, bills[1].ContentHash)
	require.NoError(t, err)
	assert.Equal(t, "2", found.ID)

	// удалённая запись не считается дубликатом
	_, err = store.FindBillByHash(ctx, bills[3].ContentHash)
	assert.ErrorIs(t, err, storage.ErrBillNotFound)
}

func TestBills_MarkSyncedAndDirty(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)
	t0 := time.Now()

	bill := &models.Bill{ID: "x", BookID: "b1", Money: 5}
	bill.Touch(t0)
	require.NoError(t, store.SaveBill(ctx, bill))

	dirty, err := store.ListDirtyBills(ctx, 100)
	require.NoError(t, err)
	require.Len(t, dirty, 1)

	ok, err := store.MarkBillSynced(ctx, "x", t0)
	require.NoError(t, err)
	assert.True(t, ok)

	dirty, err = store.ListDirtyBills(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, dirty)

	ok, err = store.MarkBillSynced(ctx, "x", t0.Add(-time.Second))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBills_RemoveByBook(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.SaveBill(ctx, &models.Bill{ID: "1", BookID: "b1"}))
	require.NoError(t, store.SaveBill(ctx, &models.Bill{ID: "2", BookID: "b1", Deleted: true}))
	require.NoError(t, store.SaveBill(ctx, &models.Bill{ID: "3", BookID: "b2"}))

	require.NoError(t, store.RemoveBillsByBook(ctx, "b1"))

	_, err := store.GetBill(ctx, "1")
	assert.ErrorIs(t, err, storage.ErrBillNotFound)
	_, err = store.GetBill(ctx, "2")
	assert.ErrorIs(t, err, storage.ErrBillNotFound)
	_, err = store.GetBill(ctx, "3")
	assert.NoError(t, err)

	require.NoError(t, store.RemoveBill(ctx, "3"))
	_, err = store.GetBill(ctx, "3")
	assert.ErrorIs(t, err, storage.ErrBillNotFound)
}

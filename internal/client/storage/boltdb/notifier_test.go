package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/models"
)

func TestNotifier_SignalsPerCollection(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	books, cancelBooks := store.Subscribe(models.EntityBook)
	defer cancelBooks()
	bills, cancelBills := store.Subscribe(models.EntityBill)
	defer cancelBills()

	require.NoError(t, store.SaveBook(ctx, &models.Book{ID: "b1"}))

	select {
	case <-books:
	case <-time.After(time.Second):
		t.Fatal("expected book signal")
	}

	select {
	case <-bills:
		t.Fatal("bill subscriber must not be signalled by a book write")
	default:
	}
}

func TestNotifier_CoalescesAndNeverBlocks(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	ch, cancel := store.Subscribe(models.EntityBill)
	defer cancel()

	// никто не читает канал, запись всё равно не блокируется
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveBill(ctx, &models.Bill{ID: "x"}))
	}

	assert.Len(t, ch, 1)
	<-ch
	assert.Len(t, ch, 0)
}

func TestNotifier_Cancel(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	ch, cancel := store.Subscribe(models.EntityImage)
	cancel()
	cancel()

	require.NoError(t, store.SaveImage(ctx, &models.Image{ID: "i"}))
	assert.Len(t, ch, 0)
}

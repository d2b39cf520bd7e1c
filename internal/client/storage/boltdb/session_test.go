package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/client/storage"
)

func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{Username: "alice", UserID: "u1", Token: "tok", ExpiresAt: 1700000000}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	session.ActiveBookID = "b1"
	require.NoError(t, store.SaveSession(ctx, session))
	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ActiveBookID)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decodeEnvelope разбирает конверт ответа и, если передан out, его data
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, out any) api.Response {
	t.Helper()

	var resp api.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	if out != nil {
		require.NotEmpty(t, resp.Data)
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}

type notification struct {
	content  any
	kind     models.MessageKind
	bookID   string
	actorID  string
	deviceID string
}

type recordingNotifier struct {
	calls []notification
	mu    sync.Mutex
}

func (n *recordingNotifier) Notify(_ context.Context, kind models.MessageKind, book *models.Book, actorID, deviceID string, content any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{
		kind:     kind,
		bookID:   book.ID,
		actorID:  actorID,
		deviceID: deviceID,
		content:  content,
	})
}

func (n *recordingNotifier) kinds() []models.MessageKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.MessageKind, 0, len(n.calls))
	for _, c := range n.calls {
		out = append(out, c.kind)
	}
	return out
}

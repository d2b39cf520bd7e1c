package handlers

import (
	"net/http"
	"strconv"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

const (
	defaultChangesLimit = 500
	maxChangesLimit     = 1000
)

// Changes обрабатывает GET /api/v1/sync/changes?since=&limit=
func (h *LedgerHandler) Changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	var since int64
	if s := q.Get("since"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			WriteError(w, h.logger, http.StatusBadRequest, "invalid since")
			return
		}
		since = v
	}

	limit := defaultChangesLimit
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			WriteError(w, h.logger, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(v, maxChangesLimit)
	}

	changes, err := h.store.Changes(ctx, userID, since, limit)
	if err != nil {
		h.internalError(w, r, "Failed to read changes", err, "user_id", userID, "since", since)
		return
	}

	resp := api.ChangesResponse{
		Books:     make([]models.Book, 0, len(changes.Books)),
		Bills:     make([]models.Bill, 0, len(changes.Bills)),
		NextSince: changes.NextSince,
		HasMore:   changes.HasMore,
	}
	for _, b := range changes.Books {
		resp.Books = append(resp.Books, *b)
	}
	for _, b := range changes.Bills {
		resp.Bills = append(resp.Bills, *b)
	}

	h.logger.DebugContext(ctx, "Changes served",
		"user_id", userID,
		"since", since,
		"books", len(resp.Books),
		"bills", len(resp.Bills),
		"has_more", resp.HasMore,
	)

	WriteJSON(w, h.logger, http.StatusOK, resp)
}

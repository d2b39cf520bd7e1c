package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
	"github.com/iudanet/ledgersync/pkg/api"
)

// PutBill обрабатывает PUT /api/v1/bills/{id}
func (h *LedgerHandler) PutBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req api.BillRequest
	var bill models.Bill
	if err := decodeBody(r, &req, &bill); err != nil {
		h.logger.WarnContext(ctx, "Failed to decode bill", "bill_id", id, "error", err)
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	book, ok := h.memberBook(w, r, bill.BookID, userID)
	if !ok {
		return
	}

	existing, err := h.store.GetBill(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrBillNotFound) {
		h.internalError(w, r, "Failed to get bill", err, "bill_id", id)
		return
	}

	kind := models.KindAddBill
	bill.ID = id
	bill.OwnerID = userID
	if existing != nil {
		// запись нельзя перенести из чужой книги
		if existing.BookID != bill.BookID {
			if _, ok := h.memberBook(w, r, existing.BookID, userID); !ok {
				return
			}
		}
		bill.OwnerID = existing.OwnerID
		bill.CreatedAt = existing.CreatedAt
		if !existing.Deleted {
			kind = models.KindUpdateBill
		}
	}

	now := h.now().UTC()
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = now
	}
	if bill.UpdatedAt.IsZero() {
		bill.UpdatedAt = now
	}
	if bill.ContentHash == "" {
		bill.ContentHash = models.ContentHash(&bill)
	}
	bill.Deleted = false
	bill.SyncStatus = models.Synced

	err = h.store.UpsertBill(ctx, &bill)
	if errors.Is(err, storage.ErrBookNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to save bill", err, "bill_id", id)
		return
	}

	h.logger.InfoContext(ctx, "Bill saved", "bill_id", id, "book_id", bill.BookID, "type", kind)
	h.notifier.Notify(ctx, kind, book, userID, deviceID(r), &bill)

	WriteJSON(w, h.logger, http.StatusOK, &bill)
}

// DeleteBill обрабатывает DELETE /api/v1/bills/{id}
func (h *LedgerHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	bill, err := h.store.GetBill(ctx, id)
	if errors.Is(err, storage.ErrBillNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, "bill not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to get bill", err, "bill_id", id)
		return
	}

	book, err := h.store.GetBook(ctx, bill.BookID)
	if err != nil {
		h.internalError(w, r, "Failed to get book", err, "book_id", bill.BookID)
		return
	}
	if !book.HasMember(userID) {
		WriteError(w, h.logger, http.StatusForbidden, "forbidden")
		return
	}
	if bill.Deleted {
		WriteJSON(w, h.logger, http.StatusOK, nil)
		return
	}

	if err := h.store.DeleteBill(ctx, id, h.now().UTC()); err != nil {
		h.internalError(w, r, "Failed to delete bill", err, "bill_id", id)
		return
	}

	h.logger.InfoContext(ctx, "Bill deleted", "bill_id", id, "book_id", bill.BookID)
	h.notifier.Notify(ctx, models.KindDeleteBill, book, userID, deviceID(r), id)

	WriteJSON(w, h.logger, http.StatusOK, nil)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
	"github.com/iudanet/ledgersync/pkg/api"
)

// PutBook обрабатывает PUT /api/v1/books/{id}.
// Создаёт книгу с клиентским id или заменяет существующую.
func (h *LedgerHandler) PutBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	var req api.BookRequest
	var book models.Book
	if err := decodeBody(r, &req, &book); err != nil {
		h.logger.WarnContext(ctx, "Failed to decode book", "book_id", id, "error", err)
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validator.Validate(req); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.store.GetBook(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrBookNotFound) {
		h.internalError(w, r, "Failed to get book", err, "book_id", id)
		return
	}

	kind := models.KindAddBook
	book.ID = id
	book.OwnerID = userID
	if existing != nil {
		if !existing.HasMember(userID) {
			WriteError(w, h.logger, http.StatusForbidden, "forbidden")
			return
		}
		book.OwnerID = existing.OwnerID
		book.CreatedAt = existing.CreatedAt
		if !existing.Deleted {
			kind = models.KindUpdateBook
		}
	}

	now := h.now().UTC()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	if book.UpdatedAt.IsZero() {
		book.UpdatedAt = now
	}
	book.Deleted = false
	book.SyncStatus = models.Synced

	if err := h.store.UpsertBook(ctx, &book); err != nil {
		h.internalError(w, r, "Failed to save book", err, "book_id", id)
		return
	}

	h.logger.InfoContext(ctx, "Book saved", "book_id", id, "user_id", userID, "type", kind)
	h.notifier.Notify(ctx, kind, &book, userID, deviceID(r), &book)

	WriteJSON(w, h.logger, http.StatusOK, &book)
}

// DeleteBook обрабатывает DELETE /api/v1/books/{id}.
// Удаление мягкое: книга и её записи попадают в ленту с deleted=true.
func (h *LedgerHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	book, err := h.store.GetBook(ctx, id)
	if errors.Is(err, storage.ErrBookNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, "book not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to get book", err, "book_id", id)
		return
	}
	if !book.HasMember(userID) {
		WriteError(w, h.logger, http.StatusForbidden, "forbidden")
		return
	}
	if book.Deleted {
		WriteJSON(w, h.logger, http.StatusOK, nil)
		return
	}

	if err := h.store.DeleteBook(ctx, id, h.now().UTC()); err != nil {
		h.internalError(w, r, "Failed to delete book", err, "book_id", id)
		return
	}

	h.logger.InfoContext(ctx, "Book deleted", "book_id", id, "user_id", userID)
	h.notifier.Notify(ctx, models.KindDeleteBook, book, userID, deviceID(r), id)

	WriteJSON(w, h.logger, http.StatusOK, nil)
}

// ListBooks обрабатывает GET /api/v1/books
func (h *LedgerHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	books, err := h.store.ListBooks(r.Context(), userID)
	if err != nil {
		h.internalError(w, r, "Failed to list books", err, "user_id", userID)
		return
	}

	WriteJSON(w, h.logger, http.StatusOK, books)
}

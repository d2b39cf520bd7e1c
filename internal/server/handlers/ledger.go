package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
	"github.com/iudanet/ledgersync/internal/validation"
	"github.com/iudanet/ledgersync/pkg/api"
)

const (
	maxJSONBody     = 1 << 20
	defaultMaxImage = 10 << 20
)

// Notifier рассылает уведомления об изменениях участникам книги
type Notifier interface {
	Notify(ctx context.Context, kind models.MessageKind, book *models.Book, actorID, deviceID string, content any)
}

// LedgerHandler обслуживает книги, записи, картинки и ленту изменений
type LedgerHandler struct {
	logger    *slog.Logger
	store     storage.LedgerStorage
	notifier  Notifier
	validator *validation.Validator
	now       func() time.Time
	imagesDir string
	maxImage  int64
}

// NewLedgerHandler creates the ledger handler. Uploaded image files are
// kept under imagesDir.
func NewLedgerHandler(logger *slog.Logger, store storage.LedgerStorage, notifier Notifier, v *validation.Validator, imagesDir string) *LedgerHandler {
	return &LedgerHandler{
		logger:    logger,
		store:     store,
		notifier:  notifier,
		validator: v,
		now:       time.Now,
		imagesDir: imagesDir,
		maxImage:  defaultMaxImage,
	}
}

// SetMaxImageSize limits the size of an uploaded image file.
func (h *LedgerHandler) SetMaxImageSize(n int64) {
	if n > 0 {
		h.maxImage = n
	}
}

// requestUser возвращает пользователя из контекста или отвечает 401
func (h *LedgerHandler) requestUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.ErrorContext(r.Context(), "User ID not found in context")
		WriteError(w, h.logger, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return userID, true
}

// memberBook загружает живую книгу и проверяет, что пользователь её участник.
// При ошибке ответ уже отправлен.
func (h *LedgerHandler) memberBook(w http.ResponseWriter, r *http.Request, bookID, userID string) (*models.Book, bool) {
	ctx := r.Context()

	book, err := h.store.GetBook(ctx, bookID)
	if errors.Is(err, storage.ErrBookNotFound) || (err == nil && book.Deleted) {
		WriteError(w, h.logger, http.StatusNotFound, "book not found")
		return nil, false
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to get book", "book_id", bookID, "error", err)
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	if !book.HasMember(userID) {
		h.logger.WarnContext(ctx, "Access to foreign book denied", "book_id", bookID, "user_id", userID)
		WriteError(w, h.logger, http.StatusForbidden, "forbidden")
		return nil, false
	}
	return book, true
}

// decodeBody читает JSON тело в каждую из целей: запрос для валидации и модель
func decodeBody(r *http.Request, targets ...any) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxJSONBody))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	for _, t := range targets {
		if err := json.Unmarshal(body, t); err != nil {
			return err
		}
	}
	return nil
}

func (h *LedgerHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	h.logger.ErrorContext(r.Context(), msg, append(args, "error", err)...)
	WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
}

func deviceID(r *http.Request) string {
	return r.Header.Get(api.HeaderDeviceID)
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
	"github.com/iudanet/ledgersync/pkg/api"
)

// UploadImage обрабатывает POST /api/v1/images.
// Поля формы: id (uuid, имя файла на диске), bill_id, file.
func (h *LedgerHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImage+1<<20)
	if err := r.ParseMultipartForm(h.maxImage); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, "failed to parse form data")
		return
	}

	id := r.FormValue("id")
	if _, err := uuid.Parse(id); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, "invalid image id")
		return
	}
	billID := r.FormValue("bill_id")

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if header.Size > h.maxImage {
		WriteError(w, h.logger, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	bill, err := h.store.GetBill(ctx, billID)
	if errors.Is(err, storage.ErrBillNotFound) || (err == nil && bill.Deleted) {
		WriteError(w, h.logger, http.StatusNotFound, "bill not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to get bill", err, "bill_id", billID)
		return
	}
	book, ok := h.memberBook(w, r, bill.BookID, userID)
	if !ok {
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.internalError(w, r, "Failed to read uploaded file", err, "image_id", id)
		return
	}

	path := filepath.Join(h.imagesDir, id)
	if err := writeFileAtomic(path, data); err != nil {
		h.internalError(w, r, "Failed to store image", err, "image_id", id)
		return
	}

	image := &models.Image{
		CreatedAt:  h.now().UTC(),
		ID:         id,
		BillID:     bill.ID,
		BookID:     bill.BookID,
		FileName:   filepath.Base(header.Filename),
		MimeType:   mimetype.Detect(data).String(),
		LocalPath:  path,
		OwnerID:    userID,
		Size:       int64(len(data)),
		SyncStatus: models.Synced,
	}
	if err := h.store.SaveImage(ctx, image); err != nil {
		h.internalError(w, r, "Failed to save image", err, "image_id", id)
		return
	}

	h.logger.InfoContext(ctx, "Image uploaded",
		"image_id", id,
		"bill_id", bill.ID,
		"size", image.Size,
		"mime_type", image.MimeType,
	)

	// путь на сервере клиентам не нужен
	content := *image
	content.LocalPath = ""
	h.notifier.Notify(ctx, models.KindUploadImage, book, userID, deviceID(r), &content)

	WriteJSON(w, h.logger, http.StatusCreated, imageInfo(image))
}

// ListImages обрабатывает GET /api/v1/images?bill_id=
func (h *LedgerHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}

	billID := r.URL.Query().Get("bill_id")
	if billID == "" {
		WriteError(w, h.logger, http.StatusBadRequest, "bill_id is required")
		return
	}

	bill, err := h.store.GetBill(ctx, billID)
	if errors.Is(err, storage.ErrBillNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, "bill not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to get bill", err, "bill_id", billID)
		return
	}
	if _, ok := h.memberBook(w, r, bill.BookID, userID); !ok {
		return
	}

	images, err := h.store.ListImages(ctx, billID)
	if err != nil {
		h.internalError(w, r, "Failed to list images", err, "bill_id", billID)
		return
	}

	infos := make([]api.ImageInfo, 0, len(images))
	for _, img := range images {
		infos = append(infos, imageInfo(img))
	}
	WriteJSON(w, h.logger, http.StatusOK, infos)
}

// DeleteImage обрабатывает DELETE /api/v1/images/{id}
func (h *LedgerHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.requestUser(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	image, err := h.store.GetImage(ctx, id)
	if errors.Is(err, storage.ErrImageNotFound) {
		WriteError(w, h.logger, http.StatusNotFound, "image not found")
		return
	}
	if err != nil {
		h.internalError(w, r, "Failed to get image", err, "image_id", id)
		return
	}

	book, err := h.store.GetBook(ctx, image.BookID)
	if err != nil {
		h.internalError(w, r, "Failed to get book", err, "book_id", image.BookID)
		return
	}
	if !book.HasMember(userID) {
		WriteError(w, h.logger, http.StatusForbidden, "forbidden")
		return
	}
	if image.Deleted {
		WriteJSON(w, h.logger, http.StatusOK, nil)
		return
	}

	if err := h.store.DeleteImage(ctx, id); err != nil {
		h.internalError(w, r, "Failed to delete image", err, "image_id", id)
		return
	}
	if image.LocalPath != "" {
		if err := os.Remove(image.LocalPath); err != nil && !os.IsNotExist(err) {
			h.logger.WarnContext(ctx, "Failed to remove image file", "image_id", id, "error", err)
		}
	}

	h.logger.InfoContext(ctx, "Image deleted", "image_id", id, "bill_id", image.BillID)
	h.notifier.Notify(ctx, models.KindDeleteImage, book, userID, deviceID(r), id)

	WriteJSON(w, h.logger, http.StatusOK, nil)
}

func imageInfo(img *models.Image) api.ImageInfo {
	return api.ImageInfo{
		ID:       img.ID,
		BillID:   img.BillID,
		BookID:   img.BookID,
		FileName: img.FileName,
		MimeType: img.MimeType,
		Size:     img.Size,
		Deleted:  img.Deleted,
	}
}

// writeFileAtomic пишет файл через временный и переименование
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move file: %w", err)
	}
	return nil
}

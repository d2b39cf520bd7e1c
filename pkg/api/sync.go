package api

import (
	"time"

	"github.com/iudanet/ledgersync/internal/models"
)

// ChangesResponse изменения на сервере начиная с метки since (unix ms).
// Удалённые записи приходят с deleted=true.
type ChangesResponse struct {
	Books     []models.Book `json:"books"`
	Bills     []models.Bill `json:"bills"`
	NextSince int64         `json:"next_since"`
	HasMore   bool          `json:"has_more"`
}

// BookRequest тело PUT /api/v1/books/{id}.
// Имена полей совпадают с JSON models.Book, клиент отправляет запись целиком.
type BookRequest struct {
	Name      string   `json:"name" validate:"required,max=128"`
	Type      string   `json:"type,omitempty" validate:"max=64"`
	BannerURL string   `json:"banner,omitempty" validate:"omitempty,url"`
	Members   []string `json:"members,omitempty" validate:"dive,required"`
}

// BillRequest тело PUT /api/v1/bills/{id}, совместимо с JSON models.Bill
type BillRequest struct {
	Time     time.Time `json:"time" validate:"required"`
	BookID   string    `json:"book_id" validate:"required"`
	Category string    `json:"category,omitempty" validate:"max=64"`
	Remark   string    `json:"remark,omitempty" validate:"max=1024"`
	Hash     string    `json:"hash,omitempty"`
	Money    int64     `json:"money"`
	Type     int       `json:"type" validate:"oneof=-1 1"`
	ImageIDs []string  `json:"images,omitempty"`
}

// ImageInfo метаданные загруженной картинки
type ImageInfo struct {
	ID       string `json:"_id"`
	BillID   string `json:"bill_id"`
	BookID   string `json:"book_id,omitempty"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type,omitempty"`
	Size     int64  `json:"size"`
	Deleted  bool   `json:"deleted,omitempty"`
}

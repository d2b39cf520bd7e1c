package models

import "time"

// Image фотография, прикреплённая к записи.
// Файл хранится локально по LocalPath до подтверждения загрузки.
type Image struct {
	CreatedAt  time.Time  `json:"crt_time"`
	ID         string     `json:"_id"`
	BillID     string     `json:"bill_id"`
	BookID     string     `json:"book_id"`
	FileName   string     `json:"file_name"`
	MimeType   string     `json:"mime_type,omitempty"`
	LocalPath  string     `json:"local_path,omitempty"`
	OwnerID    string     `json:"crt_user"`
	Size       int64      `json:"size"`
	SyncStatus SyncStatus `json:"synced"`
	Deleted    bool       `json:"deleted"`
}

// IsDirty reports whether the image still has to be uploaded or deleted remotely.
func (i *Image) IsDirty() bool {
	return i.SyncStatus != Synced
}

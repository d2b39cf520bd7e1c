package models

import "time"

// Book представляет книгу учёта (счёт), в которую группируются записи.
// ID генерируется на клиенте, поэтому книгу можно создать офлайн
// и позже отправить на сервер с тем же идентификатором.
type Book struct {
	CreatedAt  time.Time  `json:"crt_time"`
	UpdatedAt  time.Time  `json:"upd_time"`
	ID         string     `json:"_id"`
	Name       string     `json:"name"`
	Type       string     `json:"type,omitempty"`
	BannerURL  string     `json:"banner,omitempty"`
	OwnerID    string     `json:"crt_user_id"`
	Members    []string   `json:"members,omitempty"`
	SyncStatus SyncStatus `json:"synced"`
	Deleted    bool       `json:"deleted"`
}

// IsDirty reports whether the book still has to be pushed to the server.
func (b *Book) IsDirty() bool {
	return b.SyncStatus != Synced
}

// Touch marks the book as locally modified.
// Статус сбрасывается безусловно, даже если книга была синхронизирована.
func (b *Book) Touch(now time.Time) {
	b.UpdatedAt = now
	b.SyncStatus = NotSynced
}

// HasMember reports whether userID owns or shares the book.
func (b *Book) HasMember(userID string) bool {
	if b.OwnerID == userID {
		return true
	}
	for _, m := range b.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the book.
func (b *Book) Clone() *Book {
	c := *b
	if b.Members != nil {
		c.Members = append([]string(nil), b.Members...)
	}
	return &c
}

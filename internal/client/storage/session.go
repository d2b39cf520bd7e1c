package storage

import "context"

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the signed-in session on client
type SessionStorage interface {
	// SaveSession stores session data, replacing the previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if nobody is signed in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error
}

// Session represents the signed-in user on this device
type Session struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	Token        string `json:"token"`
	ActiveBookID string `json:"active_book_id,omitempty"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

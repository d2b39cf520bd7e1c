package models

import "time"

// User представляет пользователя на сервере
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	UpdatedAt    time.Time `json:"updated_at"`    // время последнего обновления
	ID           string    `json:"id"`            // UUID пользователя
	Username     string    `json:"username"`      // уникальный username
	PasswordHash string    `json:"password_hash"` // argon2id хеш пароля
	Salt         string    `json:"salt"`          // base64 encoded salt (32 bytes)
}

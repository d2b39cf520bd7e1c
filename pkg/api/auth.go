package api

import "time"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"` // username пользователя
	Password string `json:"password" validate:"required,password"`
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID string `json:"user_id"` // UUID пользователя
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения токена
	Token     string    `json:"token"`      // JWT access token
	UserID    string    `json:"user_id"`    // UUID пользователя
}

// BrokerInfo адрес MQTT брокера для клиентов
type BrokerInfo struct {
	Address string `json:"address"`
	TCPPort int    `json:"tcp_port"`
	WSPort  int    `json:"ws_port,omitempty"`
}

// HealthResponse ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

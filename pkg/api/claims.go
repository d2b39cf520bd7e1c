package api

import "github.com/golang-jwt/jwt/v5"

// TokenIssuer значение iss в токенах сервера
const TokenIssuer = "ledgersync"

// Claims представляет JWT claims, которые выдаёт сервер.
// Клиент читает их без проверки подписи, чтобы узнать свой user id и срок действия.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

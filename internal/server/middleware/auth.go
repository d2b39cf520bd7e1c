package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/ledgersync/internal/server/handlers"
	"github.com/iudanet/ledgersync/pkg/api"
)

// TokenValidator проверяет access token и возвращает его claims
type TokenValidator interface {
	ValidateAccessToken(token string) (*api.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(r.Context(), "Missing Authorization header")
				handlers.WriteError(w, logger, http.StatusUnauthorized, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				logger.WarnContext(r.Context(), "Invalid Authorization header format")
				handlers.WriteError(w, logger, http.StatusUnauthorized, "invalid token format")
				return
			}

			claims, err := tokens.ValidateAccessToken(tokenString)
			if err != nil {
				logger.WarnContext(r.Context(), "Invalid access token", "error", err)
				handlers.WriteError(w, logger, http.StatusUnauthorized, "invalid token")
				return
			}

			setLogUser(r.Context(), claims.UserID)
			ctx := handlers.WithUser(r.Context(), claims.UserID, claims.Username)
			logger.DebugContext(ctx, "User authenticated", "user_id", claims.UserID, "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

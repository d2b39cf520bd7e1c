// Package auth manages the signed-in session of this device.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/validation"
	pkgapi "github.com/iudanet/ledgersync/pkg/api"
)

var (
	// ErrNotSignedIn нет сохранённой сессии
	ErrNotSignedIn = errors.New("not signed in")
	// ErrSessionExpired срок действия токена истёк, нужен повторный login
	ErrSessionExpired = errors.New("session expired, please login again")
)

// API операции сервера, нужные авторизации
type API interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
}

// Service предоставляет функции авторизации и хранит сессию
type Service struct {
	api      API
	sessions storage.SessionStorage
	logger   *slog.Logger
	now      func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(api API, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		api:      api,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Register регистрирует нового пользователя и возвращает его id
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	if err := validation.Credentials(username, password); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", err)
	}

	resp, err := s.api.Register(ctx, pkgapi.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}
	return resp.UserID, nil
}

// Login выполняет аутентификацию и сохраняет сессию.
// Активная книга сохраняется, если тот же пользователь входит повторно.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: %w", validation.ErrPasswordEmpty)
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.Session{
		Username: username,
		UserID:   resp.UserID,
		Token:    resp.Token,
	}
	if !resp.ExpiresAt.IsZero() {
		session.ExpiresAt = resp.ExpiresAt.Unix()
	}

	// сервер мог не прислать часть полей - берём их из claims
	if claims, err := ParseClaims(resp.Token); err == nil {
		if session.UserID == "" {
			session.UserID = claims.UserID
		}
		if session.ExpiresAt == 0 && claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Unix()
		}
	} else {
		s.logger.Debug("Failed to read token claims", "error", err)
	}

	if prev, err := s.sessions.GetSession(ctx); err == nil && prev.UserID == session.UserID {
		session.ActiveBookID = prev.ActiveBookID
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Signed in", "username", username, "user_id", session.UserID)
	return session, nil
}

// Current returns the stored session. An expired token yields ErrSessionExpired
// together with the session, so callers may still read the user id.
func (s *Service) Current(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ExpiresAt > 0 && s.now().Unix() >= session.ExpiresAt {
		return session, ErrSessionExpired
	}
	return session, nil
}

// UseBook switches the active book of the session.
func (s *Service) UseBook(ctx context.Context, bookID string) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if errors.Is(err, storage.ErrSessionNotFound) {
		return nil, ErrNotSignedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session.ActiveBookID = bookID
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Logout удаляет локальную сессию. Локальные данные остаются.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.Info("Signed out")
	return nil
}

// ParseClaims reads the claims of a server token without verifying its signature.
// Подпись проверяет сервер; клиенту нужны только user id и срок.
func ParseClaims(token string) (*pkgapi.Claims, error) {
	claims := &pkgapi.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/ledgersync/internal/crypto"
	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/internal/server/storage"
	"github.com/iudanet/ledgersync/internal/validation"
	"github.com/iudanet/ledgersync/pkg/api"
)

// TokenIssuer выпускает access token для пользователя
type TokenIssuer interface {
	GenerateAccessToken(userID, username string) (string, time.Time, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger    *slog.Logger
	users     storage.UserStorage
	tokens    TokenIssuer
	validator *validation.Validator
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens TokenIssuer, v *validation.Validator) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		users:     users,
		tokens:    tokens,
		validator: v,
	}
}

// Register обрабатывает POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		h.logger.WarnContext(ctx, "invalid register request", slog.String("username", req.Username), slog.Any("error", err))
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	hash, salt, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Salt:         salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			WriteError(w, h.logger, http.StatusConflict, "username already taken")
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	WriteJSON(w, h.logger, http.StatusCreated, api.RegisterResponse{UserID: user.ID})
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		WriteError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			WriteError(w, h.logger, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordHash, user.Salt); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
			WriteError(w, h.logger, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "failed to verify password", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	token, expiresAt, err := h.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", req.Username),
		slog.String("user_id", user.ID))

	WriteJSON(w, h.logger, http.StatusOK, api.TokenResponse{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	})
}

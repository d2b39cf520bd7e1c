package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/ledgersync/pkg/api"
)

// envelope ответ {code, msg, data}; код совпадает с HTTP статусом, 0 для успеха
type envelope struct {
	Data any    `json:"data,omitempty"`
	Msg  string `json:"msg"`
	Code int    `json:"code"`
}

// WriteJSON отправляет успешный ответ в конверте
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	write(w, logger, status, envelope{Code: api.CodeOK, Msg: "ok", Data: data})
}

// WriteError отправляет ошибку в конверте
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	write(w, logger, status, envelope{Code: status, Msg: message})
}

func write(w http.ResponseWriter, logger *slog.Logger, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && logger != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

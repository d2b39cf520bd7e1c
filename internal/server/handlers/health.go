package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/ledgersync/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	db      Pinger
	version string
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		version: version,
	}
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "database ping failed", slog.Any("error", err))
			WriteError(w, h.logger, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}

	WriteJSON(w, h.logger, http.StatusOK, api.HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// BrokerHandler сообщает клиентам адрес MQTT брокера
type BrokerHandler struct {
	logger *slog.Logger
	info   api.BrokerInfo
}

// NewBrokerHandler creates the broker info handler.
func NewBrokerHandler(logger *slog.Logger, info api.BrokerInfo) *BrokerHandler {
	return &BrokerHandler{logger: logger, info: info}
}

// Broker обрабатывает GET /api/v1/mqtt/broker
func (h *BrokerHandler) Broker(w http.ResponseWriter, r *http.Request) {
	if h.info.Address == "" {
		WriteError(w, h.logger, http.StatusNotFound, "broker is not configured")
		return
	}
	WriteJSON(w, h.logger, http.StatusOK, h.info)
}

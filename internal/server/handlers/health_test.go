package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/ledgersync/pkg/api"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Health(t *testing.T) {
	handler := NewHealthHandler(setupTestLogger(), pingFunc(func(context.Context) error { return nil }), "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	handler.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.HealthResponse
	decodeEnvelope(t, w, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestHealthHandler_DatabaseDown(t *testing.T) {
	handler := NewHealthHandler(setupTestLogger(), pingFunc(func(context.Context) error {
		return errors.New("database is locked")
	}), "dev")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	handler.Health(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, http.StatusServiceUnavailable, decodeEnvelope(t, w, nil).Code)
}

func TestBrokerHandler(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		info := api.BrokerInfo{Address: "mqtt.example.com", TCPPort: 1883}
		handler := NewBrokerHandler(setupTestLogger(), info)

		w := httptest.NewRecorder()
		handler.Broker(w, httptest.NewRequest(http.MethodGet, "/api/v1/mqtt/broker", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp api.BrokerInfo
		decodeEnvelope(t, w, &resp)
		assert.Equal(t, info, resp)
	})

	t.Run("not configured", func(t *testing.T) {
		handler := NewBrokerHandler(setupTestLogger(), api.BrokerInfo{})

		w := httptest.NewRecorder()
		handler.Broker(w, httptest.NewRequest(http.MethodGet, "/api/v1/mqtt/broker", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Package receiver applies remote change notifications to the local store.
package receiver

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/iudanet/ledgersync/internal/client/storage"
	"github.com/iudanet/ledgersync/internal/models"
)

// Handler применяет уведомления определённых типов
type Handler interface {
	CanHandle(kind string) bool
	HandleMessage(ctx context.Context, msg models.SyncMessage) error
}

//go:generate moq -out publisher_mock.go . Publisher

// Publisher отправляет сообщения в брокер (realtime.Client)
type Publisher interface {
	Send(msg models.SyncMessage) bool
}

// Store локальные коллекции, которые меняют обработчики
type Store interface {
	storage.BookStorage
	storage.BillStorage
	storage.ImageStorage
}

// Options настройки получателя
type Options struct {
	// DeviceID сообщения с таким sender_id - эхо собственных изменений
	DeviceID string
	// AckEnabled публиковать <KIND>_ACK после успешной обработки
	AckEnabled bool
}

// Receiver разбирает конверт уведомления и передаёт его обработчикам.
// Набор обработчиков меняется из колбэков MQTT, пока сообщения
// обрабатываются в другой горутине, поэтому он защищён мьютексом.
type Receiver struct {
	pub      Publisher
	logger   *slog.Logger
	defaults []Handler
	handlers []Handler
	opts     Options
	mu       sync.RWMutex
}

// New creates a Receiver. pub may be nil when acknowledgments are disabled.
func New(store Store, pub Publisher, opts Options, logger *slog.Logger) *Receiver {
	return &Receiver{
		pub:      pub,
		opts:     opts,
		logger:   logger,
		defaults: defaultHandlers(store, logger),
	}
}

// Register adds a handler; registering the same handler twice is a no-op.
func (r *Receiver) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.handlers {
		if existing == h {
			return
		}
	}
	r.handlers = append(r.handlers, h)
}

// Unregister removes a handler.
func (r *Receiver) Unregister(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.handlers {
		if existing == h {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return
		}
	}
}

// RegisterDefaults registers a handler for every book, bill and image change kind.
func (r *Receiver) RegisterDefaults() {
	for _, h := range r.defaults {
		r.Register(h)
	}
}

// UnregisterAll removes every handler.
func (r *Receiver) UnregisterAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = nil
}

// Len returns the number of registered handlers.
func (r *Receiver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}

// OnMessage decodes payload and runs every handler that accepts its kind.
// Ошибки разбора и обработки логируются и не передаются вызывающему.
func (r *Receiver) OnMessage(ctx context.Context, payload []byte) {
	var msg models.SyncMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		r.logger.Warn("Failed to decode sync message", "error", err)
		return
	}
	if msg.Type == "" {
		r.logger.Warn("Sync message without type", "id", msg.ID)
		return
	}

	if r.opts.DeviceID != "" && msg.SenderID == r.opts.DeviceID {
		r.logger.Debug("Ignoring own message", "id", msg.ID, "type", msg.Type)
		return
	}
	if models.IsAck(msg.Type) {
		r.logger.Debug("Acknowledgment received", "id", msg.ID, "type", msg.Type)
		return
	}

	r.mu.RLock()
	handlers := append([]Handler(nil), r.handlers...)
	r.mu.RUnlock()

	handled := false
	for _, h := range handlers {
		if !h.CanHandle(msg.Type) {
			continue
		}
		handled = true

		if err := h.HandleMessage(ctx, msg); err != nil {
			r.logger.Warn("Failed to apply sync message", "id", msg.ID, "type", msg.Type, "error", err)
			continue
		}
		r.ack(msg)
	}

	if !handled {
		r.logger.Debug("No handler for sync message", "id", msg.ID, "type", msg.Type)
	}
}

func (r *Receiver) ack(msg models.SyncMessage) {
	if !r.opts.AckEnabled || r.pub == nil {
		return
	}

	ack, err := models.NewSyncMessage(models.AckKind(msg.Type), msg.BookID, r.opts.DeviceID, msg.ID)
	if err != nil {
		r.logger.Warn("Failed to build acknowledgment", "id", msg.ID, "error", err)
		return
	}
	if !r.pub.Send(ack) {
		r.logger.Debug("Acknowledgment not sent", "id", msg.ID, "type", ack.Type)
	}
}

// Package notify pushes change notifications to book members through MQTT.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

const (
	qosAtLeastOnce        = 1
	defaultPublishTimeout = 5 * time.Second
	disconnectQuiesceMs   = 250
)

// ErrPublishTimeout брокер не подтвердил публикацию вовремя
var ErrPublishTimeout = errors.New("publish timed out")

// Publisher отправляет готовый payload в топик
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// MQTTPublisher публикует через paho с QoS 1 без retain
type MQTTPublisher struct {
	client  mqtt.Client
	timeout time.Duration
}

// NewMQTTPublisher wraps a paho client.
func NewMQTTPublisher(client mqtt.Client, timeout time.Duration) *MQTTPublisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &MQTTPublisher{client: client, timeout: timeout}
}

// Publish sends payload and waits for the broker acknowledgment.
func (p *MQTTPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, qosAtLeastOnce, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return ErrPublishTimeout
	}
	return token.Error()
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(disconnectQuiesceMs)
	return nil
}

// Connect dials the broker with auto-reconnect enabled.
// Сервер продолжает работу без брокера: уведомления лишь ускоряют синхронизацию.
func Connect(ctx context.Context, broker string, logger *slog.Logger) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("ledgersync-server-" + uuid.NewString()).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetMaxReconnectInterval(30 * time.Second).
		SetKeepAlive(60 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("MQTT connected", "broker", broker)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("MQTT connection lost", "error", err)
		})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return nil, fmt.Errorf("failed to connect to broker: %w", err)
		}
	case <-ctx.Done():
		// SetConnectRetry продолжит попытки в фоне
		logger.Warn("MQTT broker not reachable yet, retrying in background", "broker", broker)
	}

	return NewMQTTPublisher(client, defaultPublishTimeout), nil
}

// Notifier строит SyncMessage и рассылает его участникам книги
type Notifier struct {
	pub       Publisher
	logger    *slog.Logger
	namespace string
}

// New creates a notifier. A nil publisher disables notifications.
func New(pub Publisher, namespace string, logger *slog.Logger) *Notifier {
	if namespace == "" {
		namespace = api.DefaultNamespace
	}
	return &Notifier{pub: pub, namespace: namespace, logger: logger}
}

// Notify publishes kind to the book topic and to the user topic of every
// member except actorID. deviceID is stamped as sender so the originating
// device can drop its own echo.
func (n *Notifier) Notify(ctx context.Context, kind models.MessageKind, book *models.Book, actorID, deviceID string, content any) {
	if n == nil || n.pub == nil || book == nil {
		return
	}

	msg, err := models.NewSyncMessage(kind, book.ID, deviceID, content)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to build sync message", "type", kind, "error", err)
		return
	}

	recipients := n.recipients(book, actorID)
	msg.ReceiverIDs = recipients

	payload, err := json.Marshal(msg)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to marshal sync message", "type", kind, "error", err)
		return
	}

	topics := make([]string, 0, len(recipients)+1)
	topics = append(topics, api.BookTopic(n.namespace, book.ID))
	for _, uid := range recipients {
		topics = append(topics, api.UserTopic(n.namespace, uid))
	}

	for _, topic := range topics {
		if err := n.pub.Publish(topic, payload); err != nil {
			n.logger.WarnContext(ctx, "Failed to publish sync message", "topic", topic, "type", kind, "error", err)
			continue
		}
		n.logger.DebugContext(ctx, "Sync message published", "topic", topic, "type", kind, "id", msg.ID)
	}
}

// recipients владелец и участники книги без инициатора, без повторов
func (n *Notifier) recipients(book *models.Book, actorID string) []string {
	seen := make(map[string]struct{}, len(book.Members)+1)
	var out []string
	for _, uid := range append([]string{book.OwnerID}, book.Members...) {
		if uid == "" || uid == actorID {
			continue
		}
		if _, ok := seen[uid]; ok {
			continue
		}
		seen[uid] = struct{}{}
		out = append(out, uid)
	}
	return out
}

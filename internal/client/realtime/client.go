// Package realtime keeps the MQTT session used to learn about remote changes.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

const (
	defaultConnectTimeout = 30 * time.Second
	defaultKeepAlive      = 60 * time.Second
	defaultPublishTimeout = 5 * time.Second
	defaultBufferSize     = 64
	disconnectQuiesceMs   = 250
	qosAtLeastOnce        = 1
)

// ErrNoBook returned by topic helpers when no active book is set.
var ErrNoBook = errors.New("no active book")

// Dialer creates the underlying MQTT client; tests substitute a fake.
type Dialer func(opts *mqtt.ClientOptions) mqtt.Client

// Credentials данные для авторизации на брокере
type Credentials struct {
	UserID string
	Token  string
}

// Message входящее уведомление
type Message struct {
	Topic   string
	Payload []byte
}

// Options настройки клиента
type Options struct {
	Dialer         Dialer
	Namespace      string
	ClientID       string
	ConnectTimeout time.Duration
	KeepAlive      time.Duration
	PublishTimeout time.Duration
	BufferSize     int
}

// Client владеет сессией MQTT: подключение, подписки, входящие сообщения, публикация.
type Client struct {
	client      mqtt.Client
	logger      *slog.Logger
	msgs        chan Message
	userID      string
	bookID      string
	opts        Options
	onConnected []func()
	onLost      []func(error)
	mu          sync.Mutex
	state       atomic.Int32
	dropped     atomic.Int64
}

// New creates a disconnected client.
func New(opts Options, logger *slog.Logger) *Client {
	if opts.Dialer == nil {
		opts.Dialer = mqtt.NewClient
	}
	if opts.Namespace == "" {
		opts.Namespace = api.DefaultNamespace
	}
	if opts.ClientID == "" {
		opts.ClientID = "ledgersync-" + uuid.NewString()
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = defaultConnectTimeout
	}
	if opts.KeepAlive <= 0 {
		opts.KeepAlive = defaultKeepAlive
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = defaultPublishTimeout
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}

	return &Client{
		opts:   opts,
		logger: logger,
		msgs:   make(chan Message, opts.BufferSize),
	}
}

// OnConnected registers a hook run after every (re)connect, once subscriptions are in place.
func (c *Client) OnConnected(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onConnected = append(c.onConnected, fn)
}

// OnConnectionLost registers a hook run when the session drops.
func (c *Client) OnConnectionLost(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onLost = append(c.onLost, fn)
}

// Messages returns the channel of incoming notifications.
func (c *Client) Messages() <-chan Message {
	return c.msgs
}

// SetSession sets the ids used for topics on the next (re)subscribe.
func (c *Client) SetSession(userID, bookID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = userID
	c.bookID = bookID
}

// State returns the current connection state.
func (c *Client) State() State {
	return State(c.state.Load())
}

// IsConnected reports State() == Connected.
func (c *Client) IsConnected() bool { return c.State() == Connected }

// IsDisconnected reports State() == Disconnected.
func (c *Client) IsDisconnected() bool { return c.State() == Disconnected }

// IsError reports State() == Error.
func (c *Client) IsError() bool { return c.State() == Error }

// Dropped returns how many messages were discarded because the buffer was full.
func (c *Client) Dropped() int64 { return c.dropped.Load() }

// Connect opens a new session to broker (e.g. "tcp://host:1883").
// An existing session is closed first. Automatic reconnects are handled by paho.
func (c *Client) Connect(ctx context.Context, broker string, creds Credentials) error {
	if c.IsConnected() {
		c.Close()
	}

	c.setState(Connecting)
	c.logger.Info("Connecting to broker", "broker", broker, "client_id", c.opts.ClientID)

	o := mqtt.NewClientOptions()
	o.AddBroker(broker)
	o.SetClientID(c.opts.ClientID)
	o.SetUsername(creds.UserID)
	o.SetPassword(creds.Token)
	o.SetAutoReconnect(true)
	o.SetCleanSession(false)
	o.SetConnectTimeout(c.opts.ConnectTimeout)
	o.SetKeepAlive(c.opts.KeepAlive)
	o.SetOnConnectHandler(c.handleConnect)
	o.SetConnectionLostHandler(c.handleConnectionLost)

	cli := c.opts.Dialer(o)

	c.mu.Lock()
	old := c.client
	c.client = cli
	if c.userID == "" {
		c.userID = creds.UserID
	}
	c.mu.Unlock()

	if old != nil && old.IsConnectionOpen() {
		old.Disconnect(disconnectQuiesceMs)
	}

	token := cli.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		c.setState(Error)
		return fmt.Errorf("connect cancelled: %w", ctx.Err())
	}

	if err := token.Error(); err != nil {
		c.setState(Error)
		c.logger.Warn("Broker connection failed", "broker", broker, "error", err)
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	return nil
}

// Send publishes msg to the active book topic with QoS 1 and reports whether
// the broker acknowledged it.
func (c *Client) Send(msg models.SyncMessage) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Publish panicked", "panic", r)
			ok = false
		}
	}()

	c.mu.Lock()
	cli := c.client
	topic, err := c.bookTopicLocked()
	c.mu.Unlock()

	if cli == nil || !c.IsConnected() {
		c.logger.Debug("Not connected, message not sent", "type", msg.Type)
		return false
	}
	if err != nil {
		c.logger.Debug("No topic for message", "type", msg.Type, "error", err)
		return false
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		c.logger.Warn("Failed to encode message", "type", msg.Type, "error", err)
		return false
	}

	token := cli.Publish(topic, qosAtLeastOnce, false, payload)
	if !token.WaitTimeout(c.opts.PublishTimeout) {
		c.logger.Warn("Publish timed out", "topic", topic, "type", msg.Type)
		return false
	}
	if err := token.Error(); err != nil {
		c.logger.Warn("Publish failed", "topic", topic, "type", msg.Type, "error", err)
		return false
	}
	return true
}

// Close disconnects (best effort) and forces the Disconnected state.
func (c *Client) Close() {
	c.mu.Lock()
	cli := c.client
	c.client = nil
	c.mu.Unlock()

	if cli != nil {
		cli.Disconnect(disconnectQuiesceMs)
	}
	c.setState(Disconnected)
}

// UserTopic returns the per-user topic.
func (c *Client) UserTopic(userID string) string {
	return api.UserTopic(c.opts.Namespace, userID)
}

// BookTopic returns the per-book topic.
func (c *Client) BookTopic(bookID string) string {
	return api.BookTopic(c.opts.Namespace, bookID)
}

func (c *Client) bookTopicLocked() (string, error) {
	if c.bookID == "" {
		return "", ErrNoBook
	}
	return c.BookTopic(c.bookID), nil
}

func (c *Client) setState(s State) {
	prev := State(c.state.Swap(int32(s)))
	if prev != s {
		c.logger.Debug("Realtime state changed", "from", prev, "to", s)
	}
}

// handleConnect вызывается paho после каждого подключения, включая автоматические
func (c *Client) handleConnect(cli mqtt.Client) {
	c.mu.Lock()
	if c.client != cli {
		c.mu.Unlock()
		return
	}
	filters := map[string]byte{}
	if c.userID != "" {
		filters[c.UserTopic(c.userID)] = qosAtLeastOnce
	}
	if c.bookID != "" {
		filters[c.BookTopic(c.bookID)] = qosAtLeastOnce
	}
	hooks := append([]func(){}, c.onConnected...)
	c.mu.Unlock()

	c.setState(Connected)

	if len(filters) > 0 {
		token := cli.SubscribeMultiple(filters, c.handleMessage)
		if !token.WaitTimeout(c.opts.ConnectTimeout) {
			c.logger.Warn("Subscribe timed out")
		} else if err := token.Error(); err != nil {
			c.logger.Warn("Subscribe failed", "error", err)
		} else {
			c.logger.Info("Subscribed to sync topics", "topics", len(filters))
		}
	}

	for _, fn := range hooks {
		fn()
	}
}

func (c *Client) handleConnectionLost(cli mqtt.Client, err error) {
	c.mu.Lock()
	if c.client != cli {
		c.mu.Unlock()
		return
	}
	hooks := append([]func(error){}, c.onLost...)
	c.mu.Unlock()

	c.setState(Disconnected)
	c.logger.Warn("Broker connection lost", "error", err)

	for _, fn := range hooks {
		fn(err)
	}
}

// handleMessage не должен блокировать горутину paho
func (c *Client) handleMessage(_ mqtt.Client, m mqtt.Message) {
	msg := Message{Topic: m.Topic(), Payload: append([]byte(nil), m.Payload()...)}
	select {
	case c.msgs <- msg:
	default:
		c.dropped.Add(1)
		c.logger.Warn("Message buffer full, dropping notification", "topic", msg.Topic)
	}
}

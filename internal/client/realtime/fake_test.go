package realtime

import (
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// doneToken завершённый токен paho
type doneToken struct {
	err  error
	done chan struct{}
}

func newToken(err error) *doneToken {
	d := make(chan struct{})
	close(d)
	return &doneToken{err: err, done: d}
}

func (t *doneToken) Wait() bool                     { return true }
func (t *doneToken) WaitTimeout(time.Duration) bool { return true }
func (t *doneToken) Done() <-chan struct{}          { return t.done }
func (t *doneToken) Error() error                   { return t.err }

type publishCall struct {
	payload  interface{}
	topic    string
	qos      byte
	retained bool
}

// fakeMQTT реализует mqtt.Client без сети; колбэки вызываются тестом вручную
type fakeMQTT struct {
	opts        *mqtt.ClientOptions
	connectErr  error
	publishErr  error
	subscribed  map[string]byte
	handler     mqtt.MessageHandler
	published   []publishCall
	disconnects []uint
	mu          sync.Mutex
	connected   bool
}

func (f *fakeMQTT) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeMQTT) IsConnectionOpen() bool { return f.IsConnected() }

func (f *fakeMQTT) Connect() mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = f.connectErr == nil
	return newToken(f.connectErr)
}

func (f *fakeMQTT) Disconnect(quiesce uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
	f.disconnects = append(f.disconnects, quiesce)
}

func (f *fakeMQTT) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, publishCall{topic: topic, qos: qos, retained: retained, payload: payload})
	return newToken(f.publishErr)
}

func (f *fakeMQTT) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	return f.SubscribeMultiple(map[string]byte{topic: qos}, callback)
}

func (f *fakeMQTT) SubscribeMultiple(filters map[string]byte, callback mqtt.MessageHandler) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subscribed == nil {
		f.subscribed = map[string]byte{}
	}
	for k, v := range filters {
		f.subscribed[k] = v
	}
	f.handler = callback
	return newToken(nil)
}

func (f *fakeMQTT) Unsubscribe(topics ...string) mqtt.Token {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range topics {
		delete(f.subscribed, t)
	}
	return newToken(nil)
}

func (f *fakeMQTT) AddRoute(topic string, callback mqtt.MessageHandler) {}

func (f *fakeMQTT) OptionsReader() mqtt.ClientOptionsReader {
	return mqtt.ClientOptionsReader{}
}

// deliver имитирует входящее сообщение от брокера
func (f *fakeMQTT) deliver(topic string, payload []byte) {
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	h(f, &fakeMessage{topic: topic, payload: payload})
}

// fireConnect имитирует успешное (пере)подключение
func (f *fakeMQTT) fireConnect() {
	f.opts.OnConnect(f)
}

// fireLost имитирует обрыв соединения
func (f *fakeMQTT) fireLost(err error) {
	f.mu.Lock()
	f.connected = false
	f.mu.Unlock()
	f.opts.OnConnectionLost(f, err)
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

// fakeDialer запоминает созданные клиенты
type fakeDialer struct {
	connectErr error
	clients    []*fakeMQTT
	mu         sync.Mutex
}

func (d *fakeDialer) dial(opts *mqtt.ClientOptions) mqtt.Client {
	d.mu.Lock()
	defer d.mu.Unlock()
	f := &fakeMQTT{opts: opts, connectErr: d.connectErr}
	d.clients = append(d.clients, f)
	return f
}

func (d *fakeDialer) last() *fakeMQTT {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.clients[len(d.clients)-1]
}

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/models"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type published struct {
	topic   string
	payload []byte
}

type fakePublisher struct {
	failTopic string
	calls     []published
	mu        sync.Mutex
}

func (p *fakePublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, published{topic: topic, payload: payload})
	if topic == p.failTopic {
		return errors.New("broker down")
	}
	return nil
}

func (p *fakePublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.calls))
	for _, c := range p.calls {
		out = append(out, c.topic)
	}
	return out
}

func TestNotifier_Notify(t *testing.T) {
	pub := &fakePublisher{}
	n := New(pub, "", setupTestLogger())

	book := &models.Book{ID: "b1", OwnerID: "alice", Members: []string{"bob", "alice", "carol", "bob"}}
	bill := &models.Bill{ID: "x1", BookID: "b1", Money: 100}

	n.Notify(context.Background(), models.KindAddBill, book, "alice", "dev-1", bill)

	assert.Equal(t, []string{
		"heji/book/b1/sync",
		"heji/user/bob/sync",
		"heji/user/carol/sync",
	}, pub.topics())

	var msg models.SyncMessage
	require.NoError(t, json.Unmarshal(pub.calls[0].payload, &msg))
	assert.Equal(t, models.KindAddBill, msg.Type)
	assert.Equal(t, "b1", msg.BookID)
	assert.Equal(t, "dev-1", msg.SenderID)
	assert.Equal(t, []string{"bob", "carol"}, msg.ReceiverIDs)
	assert.NotEmpty(t, msg.ID)

	var got models.Bill
	require.NoError(t, json.Unmarshal(msg.Content, &got))
	assert.Equal(t, "x1", got.ID)
}

func TestNotifier_PublishErrorContinues(t *testing.T) {
	pub := &fakePublisher{failTopic: "ns/book/b1/sync"}
	n := New(pub, "ns", setupTestLogger())

	book := &models.Book{ID: "b1", OwnerID: "alice", Members: []string{"bob"}}
	n.Notify(context.Background(), models.KindDeleteBook, book, "bob", "dev-2", "b1")

	assert.Equal(t, []string{"ns/book/b1/sync", "ns/user/alice/sync"}, pub.topics())
}

func TestNotifier_Disabled(t *testing.T) {
	var n *Notifier
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), models.KindAddBook, &models.Book{ID: "b1"}, "", "", nil)
	})

	n = New(nil, "", setupTestLogger())
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), models.KindAddBook, &models.Book{ID: "b1"}, "", "", nil)
	})
}

// tokenStub завершённый или зависший токен paho
type tokenStub struct {
	err  error
	done bool
}

func (t *tokenStub) Wait() bool                     { return t.done }
func (t *tokenStub) WaitTimeout(time.Duration) bool { return t.done }
func (t *tokenStub) Done() <-chan struct{} {
	ch := make(chan struct{})
	if t.done {
		close(ch)
	}
	return ch
}
func (t *tokenStub) Error() error { return t.err }

// clientStub реализует только Publish и Disconnect из mqtt.Client
type clientStub struct {
	mqtt.Client
	token       *tokenStub
	topic       string
	qos         byte
	retained    bool
	disconnects int
}

func (c *clientStub) Publish(topic string, qos byte, retained bool, _ interface{}) mqtt.Token {
	c.topic, c.qos, c.retained = topic, qos, retained
	return c.token
}

func (c *clientStub) Disconnect(uint) { c.disconnects++ }

func TestMQTTPublisher(t *testing.T) {
	ok := &clientStub{token: &tokenStub{done: true}}
	p := NewMQTTPublisher(ok, 0)
	require.NoError(t, p.Publish("heji/book/b1/sync", []byte("{}")))
	assert.Equal(t, "heji/book/b1/sync", ok.topic)
	assert.Equal(t, byte(1), ok.qos)
	assert.False(t, ok.retained)

	failing := &clientStub{token: &tokenStub{done: true, err: errors.New("not connected")}}
	assert.EqualError(t, NewMQTTPublisher(failing, time.Second).Publish("t", nil), "not connected")

	stuck := &clientStub{token: &tokenStub{}}
	assert.ErrorIs(t, NewMQTTPublisher(stuck, time.Millisecond).Publish("t", nil), ErrPublishTimeout)

	require.NoError(t, p.Close())
	assert.Equal(t, 1, ok.disconnects)
}

package orchestrator

import (
	"context"
	"errors"
	"sync"

	"github.com/iudanet/ledgersync/internal/client/realtime"
	clientsync "github.com/iudanet/ledgersync/internal/client/sync"
	"github.com/iudanet/ledgersync/pkg/api"
)

type fakeAPI struct {
	healthErr error
	token     string
	brokers   int
	mu        sync.Mutex
}

func (f *fakeAPI) Health(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.healthErr
}

func (f *fakeAPI) setHealth(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthErr = err
}

func (f *fakeAPI) BrokerInfo(ctx context.Context) (*api.BrokerInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brokers++
	return &api.BrokerInfo{Address: "localhost", TCPPort: 1883}, nil
}

func (f *fakeAPI) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeAPI) currentToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

type connectCall struct {
	creds  realtime.Credentials
	broker string
}

// fakeRealtime имитирует realtime.Client; подключение завершается сразу
type fakeRealtime struct {
	msgs       chan realtime.Message
	connectErr error
	connects   []connectCall
	sessions   [][2]string
	onConn     []func()
	onLost     []func(error)
	closes     int
	state      realtime.State
	mu         sync.Mutex
}

func newFakeRealtime() *fakeRealtime {
	return &fakeRealtime{msgs: make(chan realtime.Message, 8)}
}

func (f *fakeRealtime) Connect(ctx context.Context, broker string, creds realtime.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects = append(f.connects, connectCall{broker: broker, creds: creds})
	if f.connectErr != nil {
		f.state = realtime.Error
		return f.connectErr
	}
	f.state = realtime.Connecting
	return nil
}

func (f *fakeRealtime) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	f.state = realtime.Disconnected
}

func (f *fakeRealtime) SetSession(userID, bookID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, [2]string{userID, bookID})
}

func (f *fakeRealtime) State() realtime.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeRealtime) Messages() <-chan realtime.Message { return f.msgs }

func (f *fakeRealtime) OnConnected(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onConn = append(f.onConn, fn)
}

func (f *fakeRealtime) OnConnectionLost(fn func(error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onLost = append(f.onLost, fn)
}

// fireConnected имитирует колбэк paho после подключения
func (f *fakeRealtime) fireConnected() {
	f.mu.Lock()
	f.state = realtime.Connected
	hooks := append([]func(){}, f.onConn...)
	f.mu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

func (f *fakeRealtime) fireLost() {
	f.mu.Lock()
	f.state = realtime.Disconnected
	hooks := append([]func(error){}, f.onLost...)
	f.mu.Unlock()
	for _, fn := range hooks {
		fn(errors.New("connection reset"))
	}
}

func (f *fakeRealtime) connectCalls() []connectCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]connectCall(nil), f.connects...)
}

func (f *fakeRealtime) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

type fakeDrainer struct {
	starts  int
	stops   int
	running bool
	mu      sync.Mutex
}

func (f *fakeDrainer) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return
	}
	f.starts++
	f.running = true
}

func (f *fakeDrainer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running {
		return
	}
	f.stops++
	f.running = false
}

func (f *fakeDrainer) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeDrainer) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts, f.stops
}

type fakePuller struct {
	err   error
	pulls int
	mu    sync.Mutex
}

func (f *fakePuller) Pull(ctx context.Context) (*clientsync.PullResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulls++
	if f.err != nil {
		return nil, f.err
	}
	return &clientsync.PullResult{}, nil
}

func (f *fakePuller) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pulls
}

type fakeDispatcher struct {
	payloads   [][]byte
	registered bool
	mu         sync.Mutex
}

func (f *fakeDispatcher) RegisterDefaults() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = true
}

func (f *fakeDispatcher) UnregisterAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = false
}

func (f *fakeDispatcher) OnMessage(ctx context.Context, payload []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
}

func (f *fakeDispatcher) isRegistered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered
}

func (f *fakeDispatcher) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

// Package orchestrator owns the lifecycle of the sync engine: the outbound
// drain loop, the realtime channel and the inbound receiver.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/ledgersync/internal/client/realtime"
	"github.com/iudanet/ledgersync/internal/client/storage"
	clientsync "github.com/iudanet/ledgersync/internal/client/sync"
	"github.com/iudanet/ledgersync/pkg/api"
)

// API операции сервера, нужные оркестратору
type API interface {
	Pinger
	BrokerInfo(ctx context.Context) (*api.BrokerInfo, error)
	SetToken(token string)
}

// Realtime канал уведомлений (realtime.Client)
type Realtime interface {
	Connect(ctx context.Context, broker string, creds realtime.Credentials) error
	Close()
	SetSession(userID, bookID string)
	State() realtime.State
	Messages() <-chan realtime.Message
	OnConnected(fn func())
	OnConnectionLost(fn func(error))
}

// Drainer цикл выгрузки (sync.Trigger)
type Drainer interface {
	Start(ctx context.Context)
	Stop()
	Running() bool
}

// Puller догоняющая загрузка (sync.Puller)
type Puller interface {
	Pull(ctx context.Context) (*clientsync.PullResult, error)
}

// Dispatcher получатель уведомлений (receiver.Receiver)
type Dispatcher interface {
	RegisterDefaults()
	UnregisterAll()
	OnMessage(ctx context.Context, payload []byte)
}

// Deps компоненты, которыми управляет Service
type Deps struct {
	API      API
	Realtime Realtime
	Trigger  Drainer
	Puller   Puller
	Receiver Dispatcher
	Logger   *slog.Logger
}

// Config настройки оркестратора
type Config struct {
	// Broker адрес брокера (tcp://host:port); пусто - спросить у сервера
	Broker string
	// OnlineCheckInterval период проверки доступности сервера
	OnlineCheckInterval time.Duration
}

// Status снимок состояния для CLI
type Status struct {
	LastPull     time.Time
	Realtime     string
	UserID       string
	BookID       string
	LastPullErr  string
	Online       bool
	DrainRunning bool
}

// Service запускает и останавливает выгрузку и канал уведомлений вместе,
// реагируя на смену сети и сессии. Создаётся явно, глобального экземпляра нет.
type Service struct {
	deps      Deps
	monitor   *Monitor
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	session   *storage.Session
	lastPull  time.Time
	pullErr   error
	cfg       Config
	wg        sync.WaitGroup
	mu        sync.Mutex
	connectMu sync.Mutex
}

// New creates a Service and wires the realtime hooks.
func New(deps Deps, cfg Config, session *storage.Session) *Service {
	s := &Service{
		deps:    deps,
		cfg:     cfg,
		logger:  deps.Logger,
		monitor: NewMonitor(deps.API, cfg.OnlineCheckInterval, deps.Logger),
	}
	if session != nil {
		s.session = session
		deps.API.SetToken(session.Token)
	}

	deps.Realtime.OnConnected(s.handleConnected)
	deps.Realtime.OnConnectionLost(s.handleConnectionLost)
	return s
}

// Start begins connectivity monitoring, the drain loop and message consumption.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return fmt.Errorf("sync service already started")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	runCtx := s.ctx
	s.mu.Unlock()

	s.logger.Info("Starting sync service")

	s.deps.Trigger.Start(runCtx)

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.consume(runCtx)
	}()
	go func() {
		defer s.wg.Done()
		s.monitor.Run(runCtx, s.OnConnectivityChanged)
	}()

	return nil
}

// Stop closes the realtime channel, stops the loops and waits for them.
func (s *Service) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}

	s.logger.Info("Stopping sync service")
	cancel()
	s.deps.Realtime.Close()
	s.deps.Trigger.Stop()
	s.wg.Wait()
	s.deps.Receiver.UnregisterAll()
}

// OnConnectivityChanged reacts to the device going online or offline.
func (s *Service) OnConnectivityChanged(online bool) {
	ctx, ok := s.runContext()
	if !ok {
		return
	}

	if !online {
		// paho сам переподключится; выгрузка копит грязные записи
		s.logger.Info("Offline, local changes will be queued")
		return
	}

	if !s.deps.Trigger.Running() {
		s.deps.Trigger.Start(ctx)
	}

	switch s.deps.Realtime.State() {
	case realtime.Disconnected, realtime.Error:
		if err := s.connect(ctx); err != nil {
			s.logger.Warn("Failed to connect realtime channel", "error", err)
		}
	}
}

// OnSessionChanged applies a new session (nil means signed out) and forces
// a reconnect so the subscribed topics follow the new user and book.
func (s *Service) OnSessionChanged(session *storage.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	token := ""
	if session != nil {
		token = session.Token
	}
	s.deps.API.SetToken(token)
	s.deps.Realtime.Close()

	ctx, ok := s.runContext()
	if !ok {
		return
	}

	if session == nil {
		s.logger.Info("Signed out, sync paused")
		s.deps.Trigger.Stop()
		s.deps.Receiver.UnregisterAll()
		return
	}

	if !s.deps.Trigger.Running() {
		s.deps.Trigger.Start(ctx)
	}
	if err := s.connect(ctx); err != nil {
		s.logger.Warn("Failed to reconnect after session change", "error", err)
	}
}

// Status returns a snapshot of the engine state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Online:       s.monitor.Online(),
		Realtime:     s.deps.Realtime.State().String(),
		DrainRunning: s.deps.Trigger.Running(),
		LastPull:     s.lastPull,
	}
	if s.session != nil {
		st.UserID = s.session.UserID
		st.BookID = s.session.ActiveBookID
	}
	if s.pullErr != nil {
		st.LastPullErr = s.pullErr.Error()
	}
	return st
}

func (s *Service) runContext() (context.Context, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil || s.ctx.Err() != nil {
		return nil, false
	}
	return s.ctx, true
}

func (s *Service) connect(ctx context.Context) error {
	s.connectMu.Lock()
	defer s.connectMu.Unlock()

	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if session == nil || session.Token == "" {
		s.logger.Debug("No session, realtime channel stays closed")
		return nil
	}

	broker := s.cfg.Broker
	if broker == "" {
		info, err := s.deps.API.BrokerInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to get broker info: %w", err)
		}
		broker = fmt.Sprintf("tcp://%s:%d", info.Address, info.TCPPort)
	}

	s.deps.Realtime.SetSession(session.UserID, session.ActiveBookID)
	return s.deps.Realtime.Connect(ctx, broker, realtime.Credentials{
		UserID: session.UserID,
		Token:  session.Token,
	})
}

// handleConnected вызывается из горутины paho; тяжёлую работу уносим в свою
func (s *Service) handleConnected() {
	s.logger.Info("Realtime channel connected")

	started := s.goTracked(func(ctx context.Context) {
		// перезапуск даёт циклам свежие снимки после простоя
		s.deps.Trigger.Stop()
		if ctx.Err() != nil {
			return
		}
		s.deps.Trigger.Start(ctx)

		s.pull(ctx)
	})
	if started {
		s.deps.Receiver.RegisterDefaults()
	}
}

// goTracked запускает fn в горутине, которую дождётся Stop.
// Возвращает false, если сервис не запущен.
func (s *Service) goTracked(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil || s.ctx.Err() != nil {
		return false
	}
	ctx := s.ctx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(ctx)
	}()
	return true
}

func (s *Service) handleConnectionLost(err error) {
	s.logger.Warn("Realtime channel lost", "error", err)
	s.deps.Receiver.UnregisterAll()
}

func (s *Service) pull(ctx context.Context) {
	res, err := s.deps.Puller.Pull(ctx)

	s.mu.Lock()
	s.pullErr = err
	if err == nil {
		s.lastPull = time.Now()
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("Catch-up pull failed", "error", err)
		return
	}
	s.logger.Debug("Catch-up pull done", "books", res.Books, "bills", res.Bills, "removed", res.Removed)
}

func (s *Service) consume(ctx context.Context) {
	msgs := s.deps.Realtime.Messages()
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-msgs:
			s.deps.Receiver.OnMessage(ctx, m.Payload)
		}
	}
}

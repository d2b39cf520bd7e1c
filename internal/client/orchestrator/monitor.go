package orchestrator

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Pinger проверяет доступность сервера
type Pinger interface {
	Health(ctx context.Context) error
}

const defaultPingTimeout = 3 * time.Second

// Monitor периодически опрашивает сервер и сообщает о смене online/offline.
// Первый результат сообщается всегда, дальше только изменения.
type Monitor struct {
	pinger   Pinger
	logger   *slog.Logger
	interval time.Duration
	timeout  time.Duration
	online   atomic.Bool
}

// NewMonitor creates a connectivity monitor.
func NewMonitor(p Pinger, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Monitor{pinger: p, interval: interval, timeout: defaultPingTimeout, logger: logger}
}

// Online returns the last observed connectivity.
func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Run checks connectivity immediately and then on every tick until ctx is done.
func (m *Monitor) Run(ctx context.Context, onChange func(online bool)) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	known := false
	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, m.timeout)
		err := m.pinger.Health(pingCtx)
		cancel()

		if ctx.Err() != nil {
			return
		}

		online := err == nil
		if known && m.online.Load() == online {
			return
		}
		known = true
		m.online.Store(online)

		if online {
			m.logger.Info("Server is reachable")
		} else {
			m.logger.Warn("Server is unreachable", "error", err)
		}
		onChange(online)
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/iudanet/ledgersync/internal/server/config"
	"github.com/iudanet/ledgersync/internal/server/jwt"
	"github.com/iudanet/ledgersync/internal/server/middleware"
	"github.com/iudanet/ledgersync/internal/server/notify"
	"github.com/iudanet/ledgersync/internal/server/storage/sqlite"
)

// Run opens the storage, connects to the broker and serves HTTP until ctx is done.
// Брокер необязателен: без него сервер работает, клиенты опрашивают ленту изменений.
func Run(ctx context.Context, cfg *config.Config, version string, logger *slog.Logger) error {
	if err := os.MkdirAll(cfg.ImagesDir(), 0o700); err != nil {
		return fmt.Errorf("failed to create images dir: %w", err)
	}

	store, err := sqlite.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()
	logger.Info("Storage opened", "path", cfg.DB)

	var pub notify.Publisher
	if cfg.Broker.URL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
		mqttPub, err := notify.Connect(connectCtx, cfg.Broker.URL, logger)
		cancel()
		if err != nil {
			logger.Warn("Notifications disabled", "broker", cfg.Broker.URL, "error", err)
		} else {
			pub = mqttPub
			defer func() { _ = mqttPub.Close() }()
		}
	} else {
		logger.Info("No broker configured, notifications disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.Auth.RateLimit, cfg.Auth.RateWindow, logger)
	defer limiter.Stop()

	router := NewRouter(Deps{
		Logger:      logger,
		Users:       store,
		Ledger:      store,
		DB:          store,
		Tokens:      jwt.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Notifier:    notify.New(pub, cfg.Namespace, logger),
		AuthLimiter: limiter,
		Broker:      cfg.BrokerInfo(),
		ImagesDir:   cfg.ImagesDir(),
		Version:     version,
		MaxImage:    cfg.HTTP.MaxImageSize,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

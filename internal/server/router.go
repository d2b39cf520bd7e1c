// Package server wires the reference sync server: storage, handlers,
// notifications and the HTTP router.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/ledgersync/internal/server/handlers"
	"github.com/iudanet/ledgersync/internal/server/middleware"
	"github.com/iudanet/ledgersync/internal/server/storage"
	"github.com/iudanet/ledgersync/internal/validation"
	"github.com/iudanet/ledgersync/pkg/api"
)

// TokenService выпускает и проверяет access token
type TokenService interface {
	handlers.TokenIssuer
	middleware.TokenValidator
}

// Deps зависимости HTTP роутера
type Deps struct {
	Logger      *slog.Logger
	Users       storage.UserStorage
	Ledger      storage.LedgerStorage
	DB          handlers.Pinger
	Tokens      TokenService
	Notifier    handlers.Notifier
	AuthLimiter *middleware.RateLimiter
	Broker      api.BrokerInfo
	ImagesDir   string
	Version     string
	MaxImage    int64
}

// NewRouter builds the /api/v1 routes.
func NewRouter(d Deps) http.Handler {
	v := validation.New()

	authHandler := handlers.NewAuthHandler(d.Logger, d.Users, d.Tokens, v)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.DB, d.Version)
	brokerHandler := handlers.NewBrokerHandler(d.Logger, d.Broker)
	ledger := handlers.NewLedgerHandler(d.Logger, d.Ledger, d.Notifier, v, d.ImagesDir)
	ledger.SetMaxImageSize(d.MaxImage)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.LoggingWithSkip(d.Logger, []string{"/api/v1/health"}))
	r.Use(middleware.RecoveryMiddleware(d.Logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, d.Logger, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, d.Logger, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Get("/mqtt/broker", brokerHandler.Broker)

		// Auth endpoints (public, rate limited)
		r.Route("/auth", func(r chi.Router) {
			if d.AuthLimiter != nil {
				r.Use(d.AuthLimiter.Middleware())
			}
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(d.Logger, d.Tokens))

			r.Route("/books", func(r chi.Router) {
				r.Get("/", ledger.ListBooks)
				r.Put("/{id}", ledger.PutBook)
				r.Delete("/{id}", ledger.DeleteBook)
			})

			r.Route("/bills", func(r chi.Router) {
				r.Put("/{id}", ledger.PutBill)
				r.Delete("/{id}", ledger.DeleteBill)
			})

			r.Route("/images", func(r chi.Router) {
				r.Post("/", ledger.UploadImage)
				r.Get("/", ledger.ListImages)
				r.Delete("/{id}", ledger.DeleteImage)
			})

			r.Get("/sync/changes", ledger.Changes)
		})
	})

	return r
}

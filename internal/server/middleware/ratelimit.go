package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/ledgersync/internal/server/handlers"
)

// RateLimiter ограничивает частоту запросов по ключу (обычно IP адрес).
// Для каждого ключа заводится свой token bucket из x/time/rate.
type RateLimiter struct {
	limiters map[string]*keyLimiter
	logger   *slog.Logger
	done     chan struct{}
	now      func() time.Time
	limit    rate.Limit
	burst    int
	idle     time.Duration
	mu       sync.Mutex
	stopOnce sync.Once
}

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает новый rate limiter.
// requests - сколько запросов разрешено за window, они же доступны сразу (burst).
func NewRateLimiter(requests int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*keyLimiter),
		logger:   logger,
		done:     make(chan struct{}),
		now:      time.Now,
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
		idle:     window * 2,
	}

	go rl.cleanup()

	return rl
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	kl, ok := rl.limiters[key]
	if !ok {
		kl = &keyLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = kl
	}
	now := rl.now()
	kl.lastSeen = now
	rl.mu.Unlock()

	return kl.limiter.AllowN(now, 1)
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.done)
	})
}

// cleanup периодически удаляет неактивные ключи
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.removeIdle()
		case <-rl.done:
			return
		}
	}
}

// removeIdle удаляет ключи, которые не использовались дольше idle
func (rl *RateLimiter) removeIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, kl := range rl.limiters {
		if now.Sub(kl.lastSeen) > rl.idle {
			delete(rl.limiters, key)
		}
	}
}

// Middleware отклоняет запросы сверх лимита ответом 429
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r)

			if !rl.Allow(key) {
				rl.logger.WarnContext(r.Context(), "Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)
				handlers.WriteError(w, rl.logger, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса
// Проверяет заголовки X-Forwarded-For и X-Real-IP для прокси
func getClientIP(r *http.Request) string {
	// Берем первый IP из списка (реальный клиент)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/gophmedia/internal/server/handlers"
)

// RateLimiter ограничивает частоту запросов по ключу (IP клиента).
// Каждый ключ получает token bucket емкостью rate, который непрерывно
// пополняется со скоростью rate токенов за window.
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	now      func() time.Time
	cleanupC chan struct{}
	rate     int
	window   time.Duration
	mu       sync.RWMutex
	stopOnce sync.Once
}

type bucket struct {
	updated time.Time
	tokens  float64
	mu      sync.Mutex
}

// LimiterOption настраивает RateLimiter
type LimiterOption func(*RateLimiter)

// WithLimiterClock подменяет часы (для тестов)
func WithLimiterClock(now func() time.Time) LimiterOption {
	return func(rl *RateLimiter) { rl.now = now }
}

// NewRateLimiter создает limiter на rate запросов за window и запускает
// фоновую очистку неактивных ключей; Stop ее останавливает.
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger, opts ...LimiterOption) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		now:      time.Now,
		cleanupC: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	go rl.cleanup()

	return rl
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupIdle()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupIdle удаляет ключи, которые успели полностью восстановиться:
// такой bucket ничем не отличается от нового
func (rl *RateLimiter) cleanupIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		if now.Sub(b.updated) >= rl.window {
			delete(rl.buckets, key)
		}
		b.mu.Unlock()
	}
}

// Stop останавливает cleanup goroutine; повторный вызов безопасен
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.cleanupC) })
}

// perToken время восстановления одного токена
func (rl *RateLimiter) perToken() time.Duration {
	return rl.window / time.Duration(rl.rate)
}

func (rl *RateLimiter) bucketFor(key string) *bucket {
	rl.mu.RLock()
	b, ok := rl.buckets[key]
	rl.mu.RUnlock()
	if ok {
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	// bucket мог создать параллельный запрос
	if b, ok = rl.buckets[key]; !ok {
		b = &bucket{tokens: float64(rl.rate), updated: rl.now()}
		rl.buckets[key] = b
	}
	return b
}

// Allow забирает токен для key. Если токенов нет, возвращает false и время
// до появления следующего.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	b := rl.bucketFor(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	if elapsed := now.Sub(b.updated); elapsed > 0 {
		refill := float64(elapsed) / float64(rl.perToken())
		b.tokens = math.Min(float64(rl.rate), b.tokens+refill)
		b.updated = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	wait := time.Duration(math.Ceil((1 - b.tokens) * float64(rl.perToken())))
	return false, wait
}

// Middleware returns an http middleware limiting requests per client IP.
// Proxy headers are honored only when trustProxy is set.
func (rl *RateLimiter) Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r, trustProxy)

			allowed, wait := rl.Allow(key)
			if !allowed {
				retryAfter := int(math.Ceil(wait.Seconds()))
				rl.logger.WarnContext(r.Context(), "Rate limit exceeded",
					slog.String("ip", key),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int("retry_after", retryAfter),
				)

				w.Header().Set("Retry-After", strconv.Itoa(max(retryAfter, 1)))
				handlers.WriteError(w, "too many login attempts, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP возвращает IP клиента без порта. X-Forwarded-For и X-Real-IP
// учитываются только за доверенным прокси, иначе клиент обходил бы лимит,
// подставляя заголовок.
func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

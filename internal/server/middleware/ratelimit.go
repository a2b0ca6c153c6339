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

	"golang.org/x/time/rate"
)

// RateLimiter ограничивает частоту запросов по ключу (обычно IP адрес).
// Для каждого ключа держится свой token bucket из x/time/rate:
// requests запросов за window с равномерным пополнением.
type RateLimiter struct {
	now      func() time.Time
	visitors map[string]*visitor
	logger   *slog.Logger
	cleanupC chan struct{}
	stopOnce sync.Once
	limit    rate.Limit
	burst    int
	window   time.Duration
	mu       sync.Mutex
}

// visitor bucket конкретного ключа
type visitor struct {
	lastSeen time.Time
	limiter  *rate.Limiter
}

// NewRateLimiter создает новый rate limiter
// requests - максимальное количество запросов за window
// window - временное окно (например, 15 минут)
func NewRateLimiter(requests int, window time.Duration, logger *slog.Logger) *RateLimiter {
	if requests < 1 {
		requests = 1
	}

	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		window:   window,
		logger:   logger,
		cleanupC: make(chan struct{}),
		now:      time.Now,
	}

	// Запускаем периодическую очистку неактивных ключей
	go rl.cleanup()

	return rl
}

// cleanup периодически удаляет неактивные buckets для экономии памяти
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupOldVisitors()
		case <-rl.cleanupC:
			return
		}
	}
}

// cleanupOldVisitors удаляет ключи, не появлявшиеся дольше window.
// За это время bucket гарантированно полон, так что удаление ничего не меняет.
func (rl *RateLimiter) cleanupOldVisitors() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > rl.window {
			delete(rl.visitors, key)
		}
	}
}

// Stop останавливает cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.cleanupC)
	})
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// RetryAfter сколько секунд ждать появления следующего токена
func (rl *RateLimiter) RetryAfter() int {
	interval := time.Duration(float64(time.Second) / float64(rl.limit))
	return int(math.Ceil(interval.Seconds()))
}

// Len количество отслеживаемых ключей
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// PathRateLimit лимит для запросов, путь которых начинается с Prefix
type PathRateLimit struct {
	Prefix   string
	Requests int
	Window   time.Duration
}

// PathRateLimiter применяет к запросу все лимиты с подходящим префиксом.
// Так запрос на /api/auth/login расходует и общий лимит /api/, и лимит входа.
type PathRateLimiter struct {
	logger *slog.Logger
	rules  []pathRule
}

type pathRule struct {
	limiter *RateLimiter
	prefix  string
}

// NewPathRateLimiter создает limiter с набором лимитов по путям
func NewPathRateLimiter(limits []PathRateLimit, logger *slog.Logger) *PathRateLimiter {
	prl := &PathRateLimiter{logger: logger}
	for _, limit := range limits {
		prl.rules = append(prl.rules, pathRule{
			prefix:  limit.Prefix,
			limiter: NewRateLimiter(limit.Requests, limit.Window, logger),
		})
	}
	return prl
}

// Stop останавливает cleanup goroutines всех limiters
func (prl *PathRateLimiter) Stop() {
	for _, rule := range prl.rules {
		rule.limiter.Stop()
	}
}

// Middleware возвращает 429, если исчерпан любой из подходящих лимитов
func (prl *PathRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := getClientIP(r)

		for _, rule := range prl.rules {
			if !strings.HasPrefix(r.URL.Path, rule.prefix) {
				continue
			}
			if !rule.limiter.Allow(key) {
				prl.logger.WarnContext(r.Context(), "rate limit exceeded",
					slog.String("ip", key),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("rule", rule.prefix),
				)

				w.Header().Set("Retry-After", strconv.Itoa(rule.limiter.RetryAfter()))
				writeError(w, prl.logger, "Too many requests from this IP, please try again later.", http.StatusTooManyRequests)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
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
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

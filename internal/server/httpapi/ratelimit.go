package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Anish2905/JobApplicantTracker/internal/logging"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// AuthRateLimiter throttles the register/login endpoints with a fixed
// window per client IP. Counters live in Redis when a client is provided;
// otherwise in process memory with a periodic sweep of expired windows.
// Limiter failures fail open: a broken Redis must not lock everyone out.
type AuthRateLimiter struct {
	maxAttempts int
	window      time.Duration
	rdb         *redis.Client
	logger      logging.Logger

	mu       sync.Mutex
	attempts map[string]*attemptWindow
}

type attemptWindow struct {
	count     int
	resetTime time.Time
}

func NewAuthRateLimiter(ctx context.Context, maxAttempts int, window time.Duration, rdb *redis.Client, logger logging.Logger) *AuthRateLimiter {
	l := &AuthRateLimiter{
		maxAttempts: maxAttempts,
		window:      window,
		rdb:         rdb,
		logger:      logger.With("component", "ratelimit"),
		attempts:    map[string]*attemptWindow{},
	}
	if rdb == nil {
		go l.cleanupLoop(ctx)
	}
	return l
}

// cleanupLoop drops expired in-memory windows so the map does not grow with
// every IP ever seen.
func (l *AuthRateLimiter) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for ip, w := range l.attempts {
				if now.After(w.resetTime) {
					delete(l.attempts, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// allow records one attempt for ip and reports whether it is within the
// window, with the wait time when it is not.
func (l *AuthRateLimiter) allow(ctx context.Context, ip string) (time.Duration, bool) {
	if l.rdb != nil {
		return l.allowRedis(ctx, ip)
	}
	return l.allowMemory(ip)
}

func (l *AuthRateLimiter) allowRedis(ctx context.Context, ip string) (time.Duration, bool) {
	key := "ratelimit:auth:" + ip

	n, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn(ctx, "redis error, failing open", "error", err)
		return 0, true
	}
	if n == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}
	if int(n) <= l.maxAttempts {
		return 0, true
	}

	ttl, err := l.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return ttl, false
}

func (l *AuthRateLimiter) allowMemory(ip string) (time.Duration, bool) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w := l.attempts[ip]
	if w == nil || now.After(w.resetTime) {
		w = &attemptWindow{resetTime: now.Add(l.window)}
		l.attempts[ip] = w
	}

	w.count++
	if w.count <= l.maxAttempts {
		return 0, true
	}
	return time.Until(w.resetTime), false
}

// Middleware wraps auth endpoints with the limiter.
func (l *AuthRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			retryAfter, ok := l.allow(c.Request().Context(), c.RealIP())
			if !ok {
				secs := int(retryAfter.Seconds()) + 1
				c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error":      "Too many attempts. Please try again later.",
					"retryAfter": secs,
				})
			}
			return next(c)
		}
	}
}

// NewRedisClient connects to addr, or returns nil when addr is empty so the
// limiter falls back to in-memory counters.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

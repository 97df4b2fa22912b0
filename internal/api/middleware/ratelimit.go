package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apierrors "github.com/rives-io/rives-aggregator/internal/api/shared/errors"
	"github.com/rives-io/rives-aggregator/internal/logger"
)

// maxTrackedClients bounds the per-client limiter table. When it is exceeded
// the table is reset and every client starts from a full burst again.
const maxTrackedClients = 10000

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Enabled reports whether rate limiting is configured
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

type clientLimiters struct {
	mu       sync.Mutex
	cfg      RateLimitConfig
	limiters map[string]*rate.Limiter
}

func (l *clientLimiters) get(clientIP string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[clientIP]
	if ok {
		return limiter
	}

	if len(l.limiters) >= maxTrackedClients {
		l.limiters = make(map[string]*rate.Limiter)
	}

	limiter = rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)
	l.limiters[clientIP] = limiter
	return limiter
}

// RateLimit returns a gin middleware limiting each client IP to a token bucket.
// Requests over the limit are rejected with 429 rather than queued.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	// Minimum burst of 1
	cfg.Burst = max(cfg.Burst, 1)
	limiters := &clientLimiters{
		cfg:      cfg,
		limiters: make(map[string]*rate.Limiter),
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			logger.Debug("Rate limited",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError("Too many requests"))
			return
		}

		c.Next()
	}
}

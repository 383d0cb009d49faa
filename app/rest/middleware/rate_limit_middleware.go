package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	visitors map[string]*Visitor
	mutex    sync.RWMutex
}

type Visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*Visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			// Per-endpoint limits: the user resolution path hits Redis and
			// Postgres, the ping path hits nothing.
			var limit rate.Limit
			var burst int

			path := c.Request().URL.Path
			switch {
			case strings.Contains(path, "/user"):
				limit = rate.Every(time.Second)
				burst = 10
			case strings.Contains(path, "/ping"):
				limit = rate.Every(100 * time.Millisecond)
				burst = 50
			default:
				limit = rate.Every(time.Second)
				burst = 20
			}

			if !rl.allow(ip, limit, burst) {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"code":        "RATE_LIMIT_EXCEEDED",
					"retry_after": rl.getRetryAfter(ip),
				})
			}

			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string, limit rate.Limit, burst int) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		rl.visitors[ip] = &Visitor{
			limiter:  rate.NewLimiter(limit, burst),
			lastSeen: time.Now(),
		}
		return true
	}

	visitor.lastSeen = time.Now()
	return visitor.limiter.Allow()
}

func (rl *RateLimiter) getRetryAfter(ip string) int {
	rl.mutex.RLock()
	defer rl.mutex.RUnlock()

	visitor, exists := rl.visitors[ip]
	if !exists {
		return 0
	}

	reservation := visitor.limiter.Reserve()
	if !reservation.OK() {
		return 60
	}

	delay := reservation.Delay()
	reservation.Cancel()

	return int(delay.Seconds())
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for ip, visitor := range rl.visitors {
			if time.Since(visitor.lastSeen) > 10*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mutex.Unlock()
	}
}

package api

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/http/response"
	"github.com/bookshelfapp/bookshelf-server/internal/ratelimit"
)

// RateLimiter wraps the keyed limiter for HTTP middleware use.
type RateLimiter struct {
	limiter *ratelimit.KeyedRateLimiter
}

// NewRateLimiter creates a rate limiter allowing ratePerInterval requests
// per interval with the given burst size.
func NewRateLimiter(ratePerInterval int, interval time.Duration, burst int) *RateLimiter {
	rps := float64(ratePerInterval) / interval.Seconds()
	return &RateLimiter{
		limiter: ratelimit.New(rps, burst),
	}
}

// Stop shuts down the underlying limiter.
func (rl *RateLimiter) Stop() {
	rl.limiter.Stop()
}

// RateLimitMiddleware limits requests per client IP.
func RateLimitMiddleware(rl *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := getClientIP(r)

			if !rl.limiter.Allow(clientIP) {
				logger.Warn("Rate limit exceeded",
					"client_ip", clientIP,
					"path", r.URL.Path,
				)
				response.TooManyRequests(w, "rate limit exceeded, slow down", logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP extracts the client IP, honoring proxy headers.
func getClientIP(r *http.Request) string {
	// X-Forwarded-For may contain a chain; the first entry is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
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

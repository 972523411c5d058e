// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"
)

// Counter counts hits per key in fixed windows. *cache.WindowCounter
// satisfies it.
type Counter interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, reset time.Duration, err error)
}

// RateLimiter provides per-IP rate limiting with fixed windows. Counters
// live in Valkey so every server instance shares them.
type RateLimiter struct {
	counter Counter
	limit   int           // max requests per window
	window  time.Duration // window length
}

// NewRateLimiter creates a rate limiter that allows limit requests per window.
func NewRateLimiter(counter Counter, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{counter: counter, limit: limit, window: window}
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
// If the counter store fails, requests are let through.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		count, reset, err := rl.counter.Hit(r.Context(), ip, rl.window)
		if err != nil {
			slog.Warn("rate limit check failed, allowing request", "error", err, "ip", ip)
			next.ServeHTTP(w, r)
			return
		}

		remaining := int64(rl.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(rl.limit) {
			h.Set("Retry-After", strconv.Itoa(int(math.Ceil(reset.Seconds()))))
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr. Forwarding headers are
// never read here; when the server sits behind a trusted proxy the router
// installs chi's RealIP, which rewrites RemoteAddr before this runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RealIP leaves a bare address without a port.
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientIdleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client IP.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
	now     func() time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	c, ok := cl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = cl.now()
	return c.limiter.Allow()
}

// evictIdle drops clients not seen for longer than ttl.
func (cl *clientLimiter) evictIdle(ttl time.Duration) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cutoff := cl.now().Add(-ttl)
	for ip, c := range cl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(cl.clients, ip)
		}
	}
}

func (cl *clientLimiter) runEviction(ctx context.Context) {
	ticker := time.NewTicker(clientIdleTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cl.evictIdle(clientIdleTTL)
		}
	}
}

// RateLimit returns middleware that limits requests per client IP address.
// rps is the allowed requests per second, burst is the maximum burst size.
// Idle clients are evicted until ctx is cancelled.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newClientLimiter(rps, burst)
	go limiter.runEviction(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				writeJSONError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// sweepInterval is how often idle clients are forgotten.
const sweepInterval = 5 * time.Minute

// clientWindow holds the request times of one client inside the window,
// oldest first.
type clientWindow struct {
	mu   sync.Mutex
	hits []time.Time
}

// prune drops hits at or before cutoff.
func (cw *clientWindow) prune(cutoff time.Time) {
	i := 0
	for i < len(cw.hits) && !cw.hits[i].After(cutoff) {
		i++
	}
	cw.hits = cw.hits[i:]
}

// RateLimiter throttles API clients by IP with a sliding window. A limit
// below one disables it.
type RateLimiter struct {
	limit      int
	window     time.Duration
	trustProxy bool
	now        func() time.Time

	mu      sync.Mutex
	clients map[string]*clientWindow

	stopCh chan struct{}
	stop   sync.Once
}

// NewRateLimiter allows limit requests per window and client. With
// trustProxy set the client address is taken from X-Forwarded-For or
// X-Real-IP; otherwise only the connection address counts.
func NewRateLimiter(limit int, window time.Duration, trustProxy bool) *RateLimiter {
	rl := &RateLimiter{
		limit:      limit,
		window:     window,
		trustProxy: trustProxy,
		now:        time.Now,
		clients:    make(map[string]*clientWindow),
		stopCh:     make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

// Stop ends the background sweep. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stop.Do(func() { close(rl.stopCh) })
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep forgets clients without hits inside the window.
func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cw := range rl.clients {
		cw.mu.Lock()
		cw.prune(cutoff)
		idle := len(cw.hits) == 0
		cw.mu.Unlock()
		if idle {
			delete(rl.clients, key)
		}
	}
}

func (rl *RateLimiter) client(key string) *clientWindow {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cw, ok := rl.clients[key]
	if !ok {
		cw = &clientWindow{}
		rl.clients[key] = cw
	}
	return cw
}

// allow records a request from key if it fits in the window. It returns
// the requests left afterwards and, when refused, how long until the
// oldest hit leaves the window.
func (rl *RateLimiter) allow(key string) (ok bool, remaining int, retry time.Duration) {
	if rl.limit < 1 {
		return true, 0, 0
	}
	now := rl.now()
	cutoff := now.Add(-rl.window)

	cw := rl.client(key)
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.prune(cutoff)
	if len(cw.hits) >= rl.limit {
		return false, 0, cw.hits[0].Sub(cutoff)
	}
	cw.hits = append(cw.hits, now)
	return true, rl.limit - len(cw.hits), 0
}

// Middleware rejects clients over the limit with a JSON 429 and a
// Retry-After header in whole seconds. Every limited response carries
// X-RateLimit-Limit and X-RateLimit-Remaining.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, remaining, retry := rl.allow(rl.clientIP(r))
		if rl.limit > 0 {
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		}
		if !ok {
			secs := max(int(math.Ceil(retry.Seconds())), 1)
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"detail":"Request was throttled."}` + "\n"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the address requests are counted against.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if rl.trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

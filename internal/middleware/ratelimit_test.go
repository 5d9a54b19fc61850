// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

// clock is a manually advanced time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T, limit int, window time.Duration, trustProxy bool) (*RateLimiter, *clock) {
	t.Helper()
	rl := NewRateLimiter(limit, window, trustProxy)
	t.Cleanup(rl.Stop)
	c := &clock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	rl.now = c.now
	return rl, c
}

func TestRateLimiterWindow(t *testing.T) {
	rl, c := newTestLimiter(t, 3, time.Minute, false)

	for i, wantRemaining := range []int{2, 1, 0} {
		ok, remaining, _ := rl.allow("10.0.0.1")
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if remaining != wantRemaining {
			t.Errorf("request %d: remaining %d, want %d", i+1, remaining, wantRemaining)
		}
		c.advance(10 * time.Second)
	}

	ok, _, retry := rl.allow("10.0.0.1")
	if ok {
		t.Fatal("4th request should be refused")
	}
	if retry != 30*time.Second {
		t.Errorf("retry: got %v, want 30s", retry)
	}

	if ok, _, _ := rl.allow("10.0.0.2"); !ok {
		t.Error("another client has its own window")
	}

	// The first hit leaves the window after a full minute.
	c.advance(30 * time.Second)
	if ok, _, _ := rl.allow("10.0.0.1"); !ok {
		t.Error("should be allowed once the oldest hit expired")
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	rl, _ := newTestLimiter(t, 0, time.Minute, false)
	rl.Stop()

	for i := 0; i < 100; i++ {
		if ok, _, _ := rl.allow("10.0.0.1"); !ok {
			t.Fatalf("request %d: a zero limit must not throttle", i+1)
		}
	}

	rr := httptest.NewRecorder()
	rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
	if got := rr.Header().Get("X-RateLimit-Limit"); got != "" {
		t.Errorf("disabled limiter sent X-RateLimit-Limit %q", got)
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl, c := newTestLimiter(t, 2, time.Minute, false)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.RemoteAddr = "192.168.1.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		rr := send()
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d, want 200", i+1, rr.Code)
		}
		if got := rr.Header().Get("X-RateLimit-Limit"); got != "2" {
			t.Errorf("X-RateLimit-Limit: got %q", got)
		}
	}

	c.advance(500 * time.Millisecond)
	rr := send()
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "60" {
		t.Errorf("Retry-After: got %q, want %q", got, "60")
	}
	if got := rr.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining: got %q, want 0", got)
	}
	if !strings.Contains(rr.Body.String(), "throttled") {
		t.Errorf("body: got %q", rr.Body.String())
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{"forwarded for, trusted", true, "10.0.0.1", "", "192.168.1.1:1234", "10.0.0.1"},
		{"forwarded chain, trusted", true, "10.0.0.1, 172.16.0.1", "", "192.168.1.1:1234", "10.0.0.1"},
		{"real ip, trusted", true, "", "10.0.0.2", "192.168.1.1:1234", "10.0.0.2"},
		{"forwarded for, untrusted", false, "10.0.0.1", "10.0.0.2", "192.168.1.1:1234", "192.168.1.1"},
		{"ipv6 remote", false, "", "", "[2001:db8::1]:443", "2001:db8::1"},
		{"remote without port", false, "", "", "192.168.1.1", "192.168.1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := &RateLimiter{trustProxy: tt.trustProxy}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := rl.clientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterSweep(t *testing.T) {
	rl, c := newTestLimiter(t, 10, time.Minute, false)

	rl.allow("ip-old")
	c.advance(45 * time.Second)
	rl.allow("ip-fresh")
	c.advance(30 * time.Second)

	rl.sweep()

	rl.mu.Lock()
	_, oldExists := rl.clients["ip-old"]
	_, freshExists := rl.clients["ip-fresh"]
	rl.mu.Unlock()

	if oldExists {
		t.Error("ip-old has no hits inside the window and should be forgotten")
	}
	if !freshExists {
		t.Error("ip-fresh still has a hit inside the window")
	}
}

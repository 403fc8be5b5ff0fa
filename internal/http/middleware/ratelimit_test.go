package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rps float64, burst int) http.Handler {
	r := gin.New()
	rl := NewRateLimiter(rps, burst)
	r.Use(RequestID(), rl.Handler())
	r.GET("/usage", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	h := newLimitedRouter(100, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/usage", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, w.Code)
		}
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	h := newLimitedRouter(0.0001, 1)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/usage", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/usage", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("429 must carry Retry-After")
	}
	if !strings.Contains(w.Body.String(), "too_many_requests") {
		t.Fatalf("body = %q, want too_many_requests code", w.Body.String())
	}
}

func TestRateLimiter_BurstCoercedToOne(t *testing.T) {
	rl := NewRateLimiter(1, 0)
	if rl.burst != 1 {
		t.Fatalf("burst = %d, want 1", rl.burst)
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.ttl = time.Millisecond

	rl.getVisitor("ip:1.2.3.4")
	time.Sleep(5 * time.Millisecond)

	// Force the opportunistic cleanup threshold.
	rl.cleanupN = 4999
	rl.getVisitor("ip:5.6.7.8")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["ip:1.2.3.4"]; ok {
		t.Fatalf("idle visitor should have been evicted")
	}
	if _, ok := rl.visitors["ip:5.6.7.8"]; !ok {
		t.Fatalf("fresh visitor must survive cleanup")
	}
}

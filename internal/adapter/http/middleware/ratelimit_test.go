package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBlocksPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := call("1.2.3.4:1000"); got != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", got)
	}
	if got := call("1.2.3.4:2000"); got != http.StatusTooManyRequests {
		t.Fatalf("expected same host on another port to be limited, got %d", got)
	}
	if got := call("5.6.7.8:1000"); got != http.StatusOK {
		t.Fatalf("expected other client allowed, got %d", got)
	}

	now = now.Add(time.Second)
	if got := call("1.2.3.4:1000"); got != http.StatusOK {
		t.Fatalf("expected token refilled after a second, got %d", got)
	}
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	now := time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(time.Hour)
	rl.allow("b")

	if removed := rl.Prune(30 * time.Minute); removed != 1 {
		t.Fatalf("expected one idle client pruned, got %d", removed)
	}
	if _, ok := rl.clients["b"]; !ok {
		t.Fatalf("expected active client kept")
	}
}

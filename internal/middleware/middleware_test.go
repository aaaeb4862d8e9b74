package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abhiraj235/GearGo/internal/auth"
)

const testSecret = "middleware-test-secret"

func identityCapture() (http.Handler, *string, *bool) {
	var uid string
	var ok bool
	h := Identity(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok = UserID(r.Context())
	}))
	return h, &uid, &ok
}

func TestIdentityFromHeader(t *testing.T) {
	tok, _ := auth.MakeToken("u-1", testSecret, time.Minute)
	h, uid, ok := identityCapture()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !*ok || *uid != "u-1" {
		t.Errorf("uid = %q ok = %v, want u-1 true", *uid, *ok)
	}
}

func TestIdentityFromCookie(t *testing.T) {
	tok, _ := auth.MakeToken("u-2", testSecret, time.Minute)
	h, uid, ok := identityCapture()

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !*ok || *uid != "u-2" {
		t.Errorf("uid = %q ok = %v, want u-2 true", *uid, *ok)
	}
}

func TestIdentityAnonymous(t *testing.T) {
	h, _, ok := identityCapture()

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if *ok {
		t.Error("anonymous request should carry no user id")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("anonymous request should pass through, got %d", rec.Code)
	}
}

func TestIdentityBadToken(t *testing.T) {
	h, _, ok := identityCapture()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if *ok {
		t.Error("garbage token should resolve to anonymous")
	}
}

func TestRateLimitBurst(t *testing.T) {
	rl := NewRateLimiter(0.1, 2)
	h := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = "10.0.0.7:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests should pass: %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %d", codes[2])
	}
}

func TestRateLimitPerIP(t *testing.T) {
	rl := NewRateLimiter(0.1, 1)
	h := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if send("10.0.0.1:1") != http.StatusOK {
		t.Error("first client should pass")
	}
	if send("10.0.0.1:2") != http.StatusTooManyRequests {
		t.Error("same ip should be limited")
	}
	if send("10.0.0.2:1") != http.StatusOK {
		t.Error("different ip should have its own budget")
	}
}

func TestClientIPForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	if ip := clientIP(req); ip != "203.0.113.5" {
		t.Errorf("clientIP = %q, want first forwarded hop", ip)
	}

	req.Header.Del("X-Forwarded-For")
	if ip := clientIP(req); ip != "127.0.0.1" {
		t.Errorf("clientIP = %q, want socket host", ip)
	}
}

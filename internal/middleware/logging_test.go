package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRealIPFromForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := RealIP(r); got != "203.0.113.7" {
		t.Errorf("RealIP = %q, want first forwarded address", got)
	}
}

func TestRealIPSingleForwardedFor(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", " 203.0.113.7 ")

	if got := RealIP(r); got != "203.0.113.7" {
		t.Errorf("RealIP = %q, want trimmed forwarded address", got)
	}
}

func TestRealIPFromRemoteAddr(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.4:51234"

	if got := RealIP(r); got != "192.0.2.4" {
		t.Errorf("RealIP = %q, want host part of RemoteAddr", got)
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	called := false
	h := RequestLogger(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if !called {
		t.Fatal("wrapped handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/coder/websocket"

	"github.com/dukerupert/pricetrack/internal/store"
	"github.com/dukerupert/pricetrack/internal/websocket"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer() *Server {
	s := store.New(store.Seed())
	hub := websocket.NewHub(testLogger())
	return New(s, hub, nil, testLogger())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestRouting(t *testing.T) {
	router := newTestServer().Router()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/products", http.StatusOK},
		{http.MethodGet, "/api/products/p1", http.StatusOK},
		{http.MethodGet, "/api/products/barcode/3017620422003", http.StatusOK},
		{http.MethodGet, "/api/vendors", http.StatusOK},
		{http.MethodGet, "/api/lists", http.StatusOK},
		{http.MethodGet, "/api/scans", http.StatusOK},
		{http.MethodDelete, "/api/products", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.status {
			t.Errorf("%s %s: status = %d, want %d", tc.method, tc.path, rec.Code, tc.status)
		}
	}
}

func TestBackupRoutesDisabledWithoutManager(t *testing.T) {
	router := newTestServer().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backup/export", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 when backups are not configured", rec.Code)
	}
}

func TestMutationBroadcastsToWebSocketClients(t *testing.T) {
	hub := websocket.NewHub(testLogger())
	srv := httptest.NewServer(New(store.New(store.Seed()), hub, nil, testLogger()).Router())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, _, err := ws.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(ws.StatusNormalClosure, "")

	// The handshake finishing does not mean the server side has registered
	// the client yet.
	for i := 0; hub.ClientCount() == 0 && i < 100; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() == 0 {
		t.Fatal("client never registered")
	}

	body := strings.NewReader(`{"name":"Beurre doux","barcode":"3412290000054"}`)
	resp, err := http.Post(srv.URL+"/api/products", "application/json", body)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("post status = %d", resp.StatusCode)
	}

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	var msg websocket.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "product_created" || msg.ID == "" {
		t.Errorf("message = %+v", msg)
	}
}

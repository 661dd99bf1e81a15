package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidding-coach/internal/config"
	"bidding-coach/internal/store"
	"bidding-coach/internal/testutil"

	"github.com/go-chi/chi/v5"
)

func TestRoutesAndMCPEndpoint(t *testing.T) {
	router := newRouter(store.NewMemory(), config.ServerConfig{AdminAPIKey: "admin-key", MCPEnabled: true})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /healthz 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	// Empty body should fail decode and prove route is mounted.
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected /api/sessions 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected /mcp OPTIONS 204, got %d", w.Code)
	}

	initBody := []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test-client","version":"1.0.0"}}}`)
	req = httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewReader(initBody))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /mcp POST initialize 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestRouteSnapshot(t *testing.T) {
	router := newRouter(store.NewMemory(), config.ServerConfig{MCPEnabled: true})
	got := map[string]bool{}
	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[method+" "+route] = true
		return nil
	})
	want := []string{
		"GET /healthz",
		"POST /mcp",
		"GET /mcp",
		"DELETE /mcp",
		"OPTIONS /mcp",
		"POST /api/hands/parse",
		"POST /api/advise",
		"POST /api/explain",
		"POST /api/auction/status",
		"POST /api/sessions",
		"GET /api/sessions",
		"GET /api/sessions/{session_id}",
		"DELETE /api/sessions/{session_id}",
		"POST /api/sessions/{session_id}/calls",
		"DELETE /api/sessions/{session_id}/calls/last",
		"GET /api/sessions/{session_id}/advice",
		"GET /api/sessions/{session_id}/explain",
		"GET /api/sessions/{session_id}/history",
		"GET /api/sessions/{session_id}/events",
		"GET /api/debug/vars",
	}
	for _, route := range want {
		if !got[route] {
			t.Fatalf("route %q not registered; have %v", route, got)
		}
	}
}

func TestHealthWithPostgres(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	router := newRouter(st, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected /healthz 200, got %d", w.Code)
	}
}

package httptransport

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/config"
	"bidding-coach/internal/game"
	"bidding-coach/internal/store"
)

type flusherRecorder struct {
	*httptest.ResponseRecorder
	flushed bool
}

func (f *flusherRecorder) Flush() {
	f.flushed = true
}

func TestBodyCaptureMiddlewarePreservesFlusher(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "no flusher", http.StatusInternalServerError)
			return
		}
		flusher.Flush()
		w.WriteHeader(http.StatusOK)
	})

	mw := BodyCaptureMiddleware(4096)
	rec := &flusherRecorder{ResponseRecorder: httptest.NewRecorder()}
	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	mw(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !rec.flushed {
		t.Fatal("expected flush to reach underlying writer")
	}
}

func TestAdminRoutesRequireKey(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/debug/vars", "")
	if w.Code != http.StatusUnauthorized || decodeBody(t, w)["error"] != "unauthorized" {
		t.Fatalf("no key status = %d body=%s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong bearer status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	req.Header.Set("X-Admin-Key", "admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("admin key status = %d, want 200", w.Code)
	}
	if _, ok := decodeBody(t, w)["session_create_total"]; !ok {
		t.Fatal("expvar output missing session_create_total")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil)
	req.Header.Set("Authorization", "Bearer admin-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("bearer status = %d, want 200", w.Code)
	}
}

func TestHealthAndMCPMount(t *testing.T) {
	router := newTestRouter(t)
	if w := doJSON(t, router, http.MethodGet, "/healthz", ""); w.Code != http.StatusOK {
		t.Fatalf("/healthz status = %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodOptions, "/mcp", ""); w.Code != http.StatusNoContent {
		t.Fatalf("/mcp OPTIONS status = %d", w.Code)
	}

	disabled := NewRouter(store.NewMemory(), config.ServerConfig{})
	if w := doJSON(t, disabled, http.MethodOptions, "/mcp", ""); w.Code == http.StatusNoContent {
		t.Fatal("/mcp mounted with MCP disabled")
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 50, 0},
		{"limit=10&offset=20", 10, 20},
		{"limit=0", 1, 0},
		{"limit=9999", 500, 0},
		{"offset=-5", 50, 0},
		{"limit=abc", 50, 0},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/sessions?"+tt.query, nil)
		limit, offset := ParsePagination(req)
		if limit != tt.wantLimit || offset != tt.wantOffset {
			t.Fatalf("%q: got %d/%d, want %d/%d", tt.query, limit, offset, tt.wantLimit, tt.wantOffset)
		}
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{&game.MalformedHandError{Reason: "x"}, http.StatusBadRequest, "malformed_hand"},
		{&game.IllegalCallError{Call: game.Pass, Seat: game.North, Reason: "x"}, http.StatusConflict, "illegal_call"},
		{fmt.Errorf("wrap: %w", game.ErrInvalidSeat), http.StatusBadRequest, "invalid_request"},
		{appsession.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
		{appsession.ErrNotYourTurn, http.StatusConflict, "not_your_turn"},
		{appsession.ErrAuctionFinished, http.StatusConflict, "auction_finished"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		status, code := MapDomainError(tt.err)
		if status != tt.wantStatus || code != tt.wantCode {
			t.Fatalf("MapDomainError(%v) = %d %q, want %d %q", tt.err, status, code, tt.wantStatus, tt.wantCode)
		}
	}
}

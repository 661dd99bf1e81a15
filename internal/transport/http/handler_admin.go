package httptransport

import (
	"net/http"

	"bidding-coach/internal/store"
)

type AdminHandlers struct {
	store store.SessionStore
}

func NewAdminHandlers(st store.SessionStore) *AdminHandlers {
	return &AdminHandlers{store: st}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "db": "down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": "up"})
	}
}

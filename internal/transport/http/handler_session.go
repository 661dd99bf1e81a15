package httptransport

import (
	"net/http"

	appsession "bidding-coach/internal/app/session"

	"github.com/go-chi/chi/v5"
)

type SessionHandlers struct {
	sessionSvc *appsession.Service
}

func NewSessionHandlers(sessionSvc *appsession.Service) *SessionHandlers {
	return &SessionHandlers{sessionSvc: sessionSvc}
}

type callRequest struct {
	Call string `json:"call"`
}

func (h *SessionHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricSessionCreateTotal.Add(1)
		var req appsession.CreateRequest
		if !decodeJSON(r, &req) {
			metricSessionCreateErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.sessionSvc.Create(r.Context(), req)
		if err != nil {
			metricSessionCreateErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func (h *SessionHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.sessionSvc.List(r.Context(), limit, offset)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *SessionHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.sessionSvc.Get(r.Context(), chi.URLParam(r, "session_id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *SessionHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.sessionSvc.Delete(r.Context(), chi.URLParam(r, "session_id")); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func (h *SessionHandlers) Call() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricCallSubmitTotal.Add(1)
		var req callRequest
		if !decodeJSON(r, &req) {
			metricCallSubmitErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.sessionSvc.Call(r.Context(), chi.URLParam(r, "session_id"), req.Call)
		if err != nil {
			metricCallSubmitErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *SessionHandlers) Undo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.sessionSvc.Undo(r.Context(), chi.URLParam(r, "session_id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *SessionHandlers) Advice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricAdviceTotal.Add(1)
		resp, err := h.sessionSvc.Advise(r.Context(), chi.URLParam(r, "session_id"))
		if err != nil {
			metricAdviceErrorsTotal.Add(1)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *SessionHandlers) Explain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricExplainTotal.Add(1)
		q := r.URL.Query()
		if q.Get("call") == "" {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.sessionSvc.Explain(r.Context(), chi.URLParam(r, "session_id"), q.Get("call"), q.Get("seat"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *SessionHandlers) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.sessionSvc.History(r.Context(), chi.URLParam(r, "session_id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

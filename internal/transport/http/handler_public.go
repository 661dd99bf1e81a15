package httptransport

import (
	"net/http"

	apppublic "bidding-coach/internal/app/public"
)

// PublicHandlers serve the stateless queries. Each request body carries the
// full auction.
type PublicHandlers struct {
	publicSvc *apppublic.Service
}

func NewPublicHandlers(publicSvc *apppublic.Service) *PublicHandlers {
	return &PublicHandlers{publicSvc: publicSvc}
}

func (h *PublicHandlers) ParseHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apppublic.ParseHandRequest
		if !decodeJSON(r, &req) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.publicSvc.ParseHand(req)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *PublicHandlers) Advise() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricAdviceTotal.Add(1)
		var req apppublic.AdviseRequest
		if !decodeJSON(r, &req) {
			metricAdviceErrorsTotal.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.publicSvc.Advise(req)
		if err != nil {
			metricAdviceErrorsTotal.Add(1)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *PublicHandlers) Explain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricExplainTotal.Add(1)
		var req apppublic.ExplainRequest
		if !decodeJSON(r, &req) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.publicSvc.Explain(req)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *PublicHandlers) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req apppublic.StatusRequest
		if !decodeJSON(r, &req) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.publicSvc.Status(req)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

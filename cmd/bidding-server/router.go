package main

import (
	"bidding-coach/internal/config"
	"bidding-coach/internal/store"
	httptransport "bidding-coach/internal/transport/http"

	"github.com/go-chi/chi/v5"
)

func newRouter(st store.SessionStore, cfg config.ServerConfig) *chi.Mux {
	return httptransport.NewRouter(st, cfg)
}

func logRoutes(r chi.Router) {
	httptransport.LogRoutes(r)
}

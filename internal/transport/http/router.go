package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apppublic "bidding-coach/internal/app/public"
	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/config"
	"bidding-coach/internal/mcpserver"
	"bidding-coach/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st store.SessionStore, cfg config.ServerConfig) *chi.Mux {
	publicSvc := apppublic.NewService()
	sessionSvc := appsession.NewService(st)

	publicHandlers := NewPublicHandlers(publicSvc)
	sessionHandlers := NewSessionHandlers(sessionSvc)
	adminHandlers := NewAdminHandlers(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	if cfg.MCPEnabled {
		mcpSrv := mcpserver.New(publicSvc, sessionSvc)
		r.With(APILogMiddleware()).MethodFunc(http.MethodOptions, "/mcp", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Allow", "POST, GET, DELETE, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
		})
		r.With(APILogMiddleware()).Method(http.MethodPost, "/mcp", mcpSrv.Handler())
		r.With(APILogMiddleware()).Method(http.MethodGet, "/mcp", mcpSrv.Handler())
		r.With(APILogMiddleware()).Method(http.MethodDelete, "/mcp", mcpSrv.Handler())
	} else {
		log.Info().Msg("mcp disabled; /mcp not mounted")
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Post("/hands/parse", publicHandlers.ParseHand())
		r.Post("/advise", publicHandlers.Advise())
		r.Post("/explain", publicHandlers.Explain())
		r.Post("/auction/status", publicHandlers.Status())

		r.Group(func(r chi.Router) {
			r.Use(BodyCaptureMiddleware(4096))
			r.Post("/sessions", sessionHandlers.Create())
			r.Get("/sessions", sessionHandlers.List())
			r.Get("/sessions/{session_id}", sessionHandlers.Get())
			r.Delete("/sessions/{session_id}", sessionHandlers.Delete())
			r.Post("/sessions/{session_id}/calls", sessionHandlers.Call())
			r.Delete("/sessions/{session_id}/calls/last", sessionHandlers.Undo())
			r.Get("/sessions/{session_id}/advice", sessionHandlers.Advice())
			r.Get("/sessions/{session_id}/explain", sessionHandlers.Explain())
			r.Get("/sessions/{session_id}/history", sessionHandlers.History())
			r.Get("/sessions/{session_id}/events", sessionHandlers.Events())
		})

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}

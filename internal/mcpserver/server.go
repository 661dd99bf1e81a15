package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apppublic "bidding-coach/internal/app/public"
	appsession "bidding-coach/internal/app/session"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	publicSvc  *apppublic.Service
	sessionSvc *appsession.Service

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(publicSvc *apppublic.Service, sessionSvc *appsession.Service) *Server {
	mcpSrv := server.NewMCPServer(
		"bidding-coach",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)
	s := &Server{
		publicSvc:  publicSvc,
		sessionSvc: sessionSvc,
		mcpServer:  mcpSrv,
		httpServer: server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerPublicTools()
	s.registerSessionTools()
	s.registerResources()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"session://{session_id}/auction",
			"session_auction",
			mcp.WithTemplateDescription("Hand and auction of a stored bidding session"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			raw := string(request.Params.URI)
			if !strings.HasPrefix(raw, "session://") || !strings.HasSuffix(raw, "/auction") {
				return nil, nil
			}
			sessionID := strings.TrimSuffix(strings.TrimPrefix(raw, "session://"), "/auction")
			if sessionID == "" {
				return nil, nil
			}
			resp, err := s.sessionSvc.Get(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			payload, err := json.Marshal(resp)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      raw,
					MIMEType: "application/json",
					Text:     string(payload),
				},
			}, nil
		},
	)
}

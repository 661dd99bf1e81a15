package mcpserver

import (
	"context"

	appsession "bidding-coach/internal/app/session"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerSessionTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"create_session",
			mcp.WithDescription("Start a bidding session for one hand and seat. Calls from all four seats are then recorded in turn."),
			mcp.WithString("seat", mcp.Required(), mcp.Description("Your seat, N|E|S|W")),
			mcp.WithString("dealer", mcp.Required(), mcp.Description("Dealer seat, N|E|S|W")),
			mcp.WithString("hand", mcp.Required(), mcp.Description("Your 13 cards")),
		),
		s.handleCreateSession,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"record_call",
			mcp.WithDescription("Record the next call of the auction for whichever seat is on turn"),
			mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
			mcp.WithString("call", mcp.Required(), mcp.Description("P|X|XX or a contract like 1NT")),
		),
		s.handleRecordCall,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"undo_call",
			mcp.WithDescription("Remove the most recent call"),
			mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
		),
		s.handleUndoCall,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"session_advice",
			mcp.WithDescription("Suggest calls for the session hand. Fails unless it is the session seat's turn."),
			mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
		),
		s.handleSessionAdvice,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"session_history",
			mcp.WithDescription("Explain every call recorded so far"),
			mcp.WithString("session_id", mcp.Required(), mcp.Description("Session id")),
		),
		s.handleSessionHistory,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_sessions",
			mcp.WithDescription("List stored sessions, most recently updated first"),
			mcp.WithNumber("limit", mcp.Description("Page size, default 50, max 500")),
			mcp.WithNumber("offset", mcp.Description("Page offset, default 0")),
		),
		s.handleListSessions,
	)
}

func (s *Server) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seat, err := request.RequireString("seat")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	dealer, err := request.RequireString("dealer")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	hand, err := request.RequireString("hand")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.sessionSvc.Create(ctx, appsession.CreateRequest{Seat: seat, Dealer: dealer, Hand: hand})
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleRecordCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	call, err := request.RequireString("call")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.sessionSvc.Call(ctx, sessionID, call)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleUndoCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.sessionSvc.Undo(ctx, sessionID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleSessionAdvice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.sessionSvc.Advise(ctx, sessionID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleSessionHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, err := request.RequireString("session_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.sessionSvc.History(ctx, sessionID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit, offset := clampPagination(request.GetInt("limit", defaultPageLimit), request.GetInt("offset", 0), maxPageLimit)
	resp, err := s.sessionSvc.List(ctx, limit, offset)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

package mcpserver

import (
	"context"

	apppublic "bidding-coach/internal/app/public"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPublicTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"parse_hand",
			mcp.WithDescription("Parse a 13-card hand and report HCP, shape and balance"),
			mcp.WithString("hand", mcp.Required(), mcp.Description("Dotted S.H.D.C groups like AKJ2.KQ3.Q2.432, or card tokens like AS KH TD 2C")),
		),
		s.handleParseHand,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"advise_call",
			mcp.WithDescription("Suggest calls for the seat on turn holding the given hand"),
			mcp.WithString("hand", mcp.Required(), mcp.Description("Hand of the seat on turn")),
			mcp.WithString("dealer", mcp.Required(), mcp.Description("N|E|S|W")),
			mcp.WithString("calls", mcp.Description("Space separated calls so far, e.g. '1NT P'")),
		),
		s.handleAdviseCall,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"explain_call",
			mcp.WithDescription("Explain what a call would mean in the current auction"),
			mcp.WithString("dealer", mcp.Required(), mcp.Description("N|E|S|W")),
			mcp.WithString("calls", mcp.Description("Space separated calls so far")),
			mcp.WithString("call", mcp.Required(), mcp.Description("Call to explain, e.g. 2C, X, 4NT")),
			mcp.WithString("seat", mcp.Description("Seat making the call, default the seat on turn")),
		),
		s.handleExplainCall,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"auction_status",
			mcp.WithDescription("Replay an auction and report turn, state and final contract"),
			mcp.WithString("dealer", mcp.Required(), mcp.Description("N|E|S|W")),
			mcp.WithString("calls", mcp.Description("Space separated calls so far")),
		),
		s.handleAuctionStatus,
	)
}

func (s *Server) handleParseHand(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hand, err := request.RequireString("hand")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.publicSvc.ParseHand(apppublic.ParseHandRequest{Hand: hand})
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleAdviseCall(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hand, err := request.RequireString("hand")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	dealer, err := request.RequireString("dealer")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.publicSvc.Advise(apppublic.AdviseRequest{
		Hand:   hand,
		Dealer: dealer,
		Calls:  request.GetString("calls", ""),
	})
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleExplainCall(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dealer, err := request.RequireString("dealer")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	call, err := request.RequireString("call")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.publicSvc.Explain(apppublic.ExplainRequest{
		Dealer: dealer,
		Calls:  request.GetString("calls", ""),
		Call:   call,
		Seat:   request.GetString("seat", ""),
	})
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

func (s *Server) handleAuctionStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dealer, err := request.RequireString("dealer")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	resp, err := s.publicSvc.Status(apppublic.StatusRequest{Dealer: dealer, Calls: request.GetString("calls", "")})
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}

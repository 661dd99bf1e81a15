package mcpserver

import (
	"errors"
	"fmt"

	apppublic "bidding-coach/internal/app/public"
	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/game"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolResult(data any) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(data)
}

func toolError(code, message string) *mcp.CallToolResult {
	result := mcp.NewToolResultStructured(
		map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		},
		fmt.Sprintf("%s: %s", code, message),
	)
	result.IsError = true
	return result
}

func mapDomainError(err error) *mcp.CallToolResult {
	switch {
	case err == nil:
		return toolError("internal_error", "unknown error")
	case errors.Is(err, game.ErrMalformedHand):
		return toolError("malformed_hand", err.Error())
	case errors.Is(err, game.ErrIllegalCall):
		return toolError("illegal_call", err.Error())
	case errors.Is(err, game.ErrInvalidCall),
		errors.Is(err, game.ErrInvalidSeat),
		errors.Is(err, apppublic.ErrInvalidRequest),
		errors.Is(err, appsession.ErrInvalidRequest):
		return toolError("invalid_request", err.Error())
	case errors.Is(err, appsession.ErrSessionNotFound):
		return toolError("session_not_found", err.Error())
	case errors.Is(err, appsession.ErrNotYourTurn):
		return toolError("not_your_turn", err.Error())
	case errors.Is(err, apppublic.ErrAuctionFinished), errors.Is(err, appsession.ErrAuctionFinished):
		return toolError("auction_finished", err.Error())
	default:
		return toolError("internal_error", err.Error())
	}
}

package session

import (
	"time"

	"bidding-coach/internal/game/viewmodel"
)

type CreateRequest struct {
	Seat   string `json:"seat"`
	Dealer string `json:"dealer"`
	Hand   string `json:"hand"`
}

type SessionResponse struct {
	SessionID string                `json:"session_id"`
	Seat      string                `json:"seat"`
	YourTurn  bool                  `json:"your_turn"`
	Hand      viewmodel.HandView    `json:"hand"`
	Auction   viewmodel.AuctionView `json:"auction"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

type AdviceResponse struct {
	SessionID   string                     `json:"session_id"`
	Seat        string                     `json:"seat"`
	Points      int                        `json:"points"`
	Suggestions []viewmodel.SuggestionView `json:"suggestions"`
}

type ExplainResponse struct {
	SessionID   string                    `json:"session_id"`
	Explanation viewmodel.ExplanationView `json:"explanation"`
}

type HistoryResponse struct {
	SessionID string                      `json:"session_id"`
	Items     []viewmodel.ExplanationView `json:"items"`
}

type ListResponse struct {
	Items  []SessionItem `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type SessionItem struct {
	SessionID string    `json:"session_id"`
	Seat      string    `json:"seat"`
	Dealer    string    `json:"dealer"`
	Calls     int       `json:"calls"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CallEvent is the payload of call_recorded and call_undone events. Seat is
// the seat that made the call, or the seat on turn again after an undo.
type CallEvent struct {
	Seat    string                `json:"seat"`
	Call    string                `json:"call"`
	Auction viewmodel.AuctionView `json:"auction"`
}

package public

import "bidding-coach/internal/game/viewmodel"

type ParseHandRequest struct {
	Hand string `json:"hand"`
}

type ParseHandResponse struct {
	Hand viewmodel.HandView `json:"hand"`
}

type AdviseRequest struct {
	Hand   string `json:"hand"`
	Dealer string `json:"dealer"`
	Calls  string `json:"calls"`
}

type AdviseResponse struct {
	Seat        string                     `json:"seat"`
	Points      int                        `json:"points"`
	Suggestions []viewmodel.SuggestionView `json:"suggestions"`
}

type ExplainRequest struct {
	Dealer string `json:"dealer"`
	Calls  string `json:"calls"`
	Call   string `json:"call"`
	Seat   string `json:"seat"`
}

type ExplainResponse struct {
	Explanation viewmodel.ExplanationView `json:"explanation"`
}

type StatusRequest struct {
	Dealer string `json:"dealer"`
	Calls  string `json:"calls"`
}

type StatusResponse struct {
	Auction viewmodel.AuctionView `json:"auction"`
}

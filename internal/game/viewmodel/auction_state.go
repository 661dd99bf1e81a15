package viewmodel

import (
	"bidding-coach/internal/advisor"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

type HandView struct {
	Cards    []string `json:"cards"`
	Dotted   string   `json:"dotted"`
	Points   int      `json:"points"`
	Shape    [4]int   `json:"shape"`
	Balanced bool     `json:"balanced"`
	Aces     int      `json:"aces"`
}

type CallView struct {
	Seat  string `json:"seat"`
	Call  string `json:"call"`
	Label string `json:"label"`
}

type ResultView struct {
	PassedOut   bool   `json:"passed_out"`
	Contract    string `json:"contract,omitempty"`
	Declarer    string `json:"declarer,omitempty"`
	Dummy       string `json:"dummy,omitempty"`
	OpeningLead string `json:"opening_lead,omitempty"`
	Doubled     bool   `json:"doubled"`
	Redoubled   bool   `json:"redoubled"`
}

type AuctionView struct {
	Dealer      string      `json:"dealer"`
	CurrentSeat string      `json:"current_seat"`
	State       string      `json:"state"`
	PassCount   int         `json:"pass_count"`
	Calls       []CallView  `json:"calls"`
	Result      *ResultView `json:"result,omitempty"`
}

type SuggestionView struct {
	Call   string `json:"call"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
	Range  string `json:"range"`
}

type ExplanationView struct {
	Call         string `json:"call"`
	Seat         string `json:"seat"`
	Meaning      string `json:"meaning"`
	Convention   string `json:"convention,omitempty"`
	PointRange   string `json:"point_range"`
	ImpliedShape string `json:"implied_shape"`
}

func BuildHand(h game.Hand) HandView {
	cards := h.Cards()
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return HandView{
		Cards:    out,
		Dotted:   h.String(),
		Points:   h.Points(),
		Shape:    h.Shape(),
		Balanced: h.Balanced(),
		Aces:     h.Aces(),
	}
}

func BuildAuction(l *ledger.Ledger) AuctionView {
	entries := l.Entries()
	calls := make([]CallView, 0, len(entries))
	for _, e := range entries {
		calls = append(calls, CallView{Seat: e.Seat.String(), Call: e.Call.String(), Label: e.Call.Label()})
	}
	view := AuctionView{
		Dealer:      l.Dealer().String(),
		CurrentSeat: l.CurrentSeat().String(),
		State:       string(l.State()),
		PassCount:   l.PassCount(),
		Calls:       calls,
	}
	if res, ok := l.Result(); ok {
		rv := BuildResult(res)
		view.Result = &rv
	}
	return view
}

func BuildResult(res ledger.Result) ResultView {
	if res.PassedOut {
		return ResultView{PassedOut: true}
	}
	return ResultView{
		Contract:    res.Contract.String(),
		Declarer:    res.Declarer.String(),
		Dummy:       res.Dummy.String(),
		OpeningLead: res.OpeningLead.String(),
		Doubled:     res.Doubled,
		Redoubled:   res.Redoubled,
	}
}

func BuildSuggestions(in []advisor.Suggestion) []SuggestionView {
	out := make([]SuggestionView, 0, len(in))
	for _, s := range in {
		out = append(out, SuggestionView{
			Call:   s.Call.String(),
			Label:  s.Call.Label(),
			Reason: s.Reason,
			Range:  s.Range,
		})
	}
	return out
}

func BuildExplanation(call game.Call, seat game.Seat, e advisor.Explanation) ExplanationView {
	return ExplanationView{
		Call:         call.String(),
		Seat:         seat.String(),
		Meaning:      e.Meaning,
		Convention:   e.Convention,
		PointRange:   e.PointRange,
		ImpliedShape: e.ImpliedShape,
	}
}

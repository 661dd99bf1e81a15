// Package public answers one-shot bidding questions. Every request carries
// the whole auction, so nothing is stored between calls.
package public

import (
	"strings"

	"bidding-coach/internal/advisor"
	"bidding-coach/internal/game"
	"bidding-coach/internal/game/viewmodel"
	"bidding-coach/internal/ledger"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) ParseHand(in ParseHandRequest) (*ParseHandResponse, error) {
	h, err := game.ParseHand(in.Hand)
	if err != nil {
		return nil, err
	}
	return &ParseHandResponse{Hand: viewmodel.BuildHand(h)}, nil
}

// Advise treats the hand as belonging to the seat on turn.
func (s *Service) Advise(in AdviseRequest) (*AdviseResponse, error) {
	h, err := game.ParseHand(in.Hand)
	if err != nil {
		return nil, err
	}
	l, err := replay(in.Dealer, in.Calls)
	if err != nil {
		return nil, err
	}
	if l.IsFinished() {
		return nil, ErrAuctionFinished
	}
	return &AdviseResponse{
		Seat:        l.CurrentSeat().String(),
		Points:      h.Points(),
		Suggestions: viewmodel.BuildSuggestions(advisor.Advise(h, l)),
	}, nil
}

// Explain describes in.Call as made next by in.Seat, or by the seat on turn
// when no seat is given.
func (s *Service) Explain(in ExplainRequest) (*ExplainResponse, error) {
	if strings.TrimSpace(in.Call) == "" {
		return nil, ErrInvalidRequest
	}
	l, err := replay(in.Dealer, in.Calls)
	if err != nil {
		return nil, err
	}
	seat := l.CurrentSeat()
	if strings.TrimSpace(in.Seat) != "" {
		if seat, err = game.ParseSeat(in.Seat); err != nil {
			return nil, err
		}
	}
	call, err := game.ParseCall(in.Call)
	if err != nil {
		return nil, err
	}
	e := advisor.ExplainCall(call, l, seat)
	return &ExplainResponse{Explanation: viewmodel.BuildExplanation(call, seat, e)}, nil
}

func (s *Service) Status(in StatusRequest) (*StatusResponse, error) {
	l, err := replay(in.Dealer, in.Calls)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{Auction: viewmodel.BuildAuction(l)}, nil
}

func replay(rawDealer, rawCalls string) (*ledger.Ledger, error) {
	dealer, err := game.ParseSeat(rawDealer)
	if err != nil {
		return nil, err
	}
	calls, err := game.ParseCalls(rawCalls)
	if err != nil {
		return nil, err
	}
	return ledger.Replay(dealer, calls)
}

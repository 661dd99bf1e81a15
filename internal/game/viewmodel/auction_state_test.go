package viewmodel

import (
	"testing"

	"bidding-coach/internal/advisor"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

func TestBuildAuctionCallsAndResult(t *testing.T) {
	calls, err := game.ParseCalls("1C P 1H P 4H P P P")
	if err != nil {
		t.Fatalf("parse calls: %v", err)
	}
	l, err := ledger.Replay(game.North, calls)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	view := BuildAuction(l)
	if len(view.Calls) != 8 {
		t.Fatalf("expected 8 calls, got %d", len(view.Calls))
	}
	if view.Calls[2].Seat != "S" || view.Calls[2].Label != "1♥" {
		t.Fatalf("unexpected third call %+v", view.Calls[2])
	}
	if view.State != "finished" {
		t.Fatalf("expected finished state, got %s", view.State)
	}
	if view.Result == nil || view.Result.Contract != "4H" || view.Result.Declarer != "S" {
		t.Fatalf("unexpected result %+v", view.Result)
	}
}

func TestBuildAuctionInProgressHasNoResult(t *testing.T) {
	l := ledger.New(game.West)
	_ = l.Append(game.Pass)
	view := BuildAuction(l)
	if view.Result != nil {
		t.Fatalf("expected no result, got %+v", view.Result)
	}
	if view.Dealer != "W" || view.CurrentSeat != "N" || view.PassCount != 1 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestBuildHandAndSuggestions(t *testing.T) {
	h, err := game.ParseHand("AK2.KQ3.QJ4.J432")
	if err != nil {
		t.Fatalf("parse hand: %v", err)
	}
	hv := BuildHand(h)
	if len(hv.Cards) != 13 || hv.Points != 16 || !hv.Balanced || hv.Dotted != "AK2.KQ3.QJ4.J432" {
		t.Fatalf("unexpected hand view %+v", hv)
	}
	sv := BuildSuggestions(advisor.Advise(h, ledger.New(game.North)))
	if len(sv) == 0 || sv[0].Call != "1NT" || sv[0].Range != "15-17" {
		t.Fatalf("unexpected suggestions %+v", sv)
	}
}

package advisor

import (
	"strings"
	"testing"

	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

func mustHand(t *testing.T, raw string) game.Hand {
	t.Helper()
	h, err := game.ParseHand(raw)
	if err != nil {
		t.Fatalf("parse hand %q: %v", raw, err)
	}
	return h
}

func mustLedger(t *testing.T, dealer game.Seat, raw string) *ledger.Ledger {
	t.Helper()
	calls, err := game.ParseCalls(raw)
	if err != nil {
		t.Fatalf("parse calls %q: %v", raw, err)
	}
	l, err := ledger.Replay(dealer, calls)
	if err != nil {
		t.Fatalf("replay %q: %v", raw, err)
	}
	return l
}

func callsOf(s []Suggestion) string {
	out := make([]string, len(s))
	for i, sg := range s {
		out[i] = sg.Call.String()
	}
	return strings.Join(out, " ")
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		name  string
		calls string
		hand  string
		want  string
	}{
		{name: "16 balanced opens 1NT first", calls: "", hand: "AK2.KQ3.QJ4.J432", want: "1NT 1C"},
		{name: "23 points opens 2C only", calls: "", hand: "AKQ2.AKQ.KQ2.432", want: "2C"},
		{name: "22 points unbalanced opens 2C only", calls: "", hand: "AKQJT98.AKQ.K2.2", want: "2C"},
		{name: "20 balanced", calls: "", hand: "AKQ2.KQ3.AQ4.432", want: "2NT 1D"},
		{name: "five spades", calls: "", hand: "AKJ32.K32.Q2.432", want: "1S"},
		{name: "longer hearts", calls: "P", hand: "AK32.KQ432.32.32", want: "1H"},
		{name: "equal minors open 1D", calls: "", hand: "AK32.K32.Q432.32", want: "1D"},
		{name: "longer clubs open 1C", calls: "", hand: "AK32.K32.32.Q432", want: "1C"},
		{name: "weak two", calls: "", hand: "KQJ432.32.432.32", want: "2S"},
		{name: "preempt before weak two", calls: "", hand: "KQJ5432.32.432.2", want: "3S 2S"},
		{name: "too weak to open", calls: "P P", hand: "5432.432.432.432", want: "P"},
		{name: "transfer to hearts", calls: "1NT P", hand: "K2.AQ432.J43.432", want: "2D 2C"},
		{name: "transfer to spades with stayman", calls: "1NT P", hand: "AQ432.K432.J4.32", want: "2H 2C"},
		{name: "weak hand passes 1NT", calls: "1NT P", hand: "Q432.J32.J32.Q32", want: "P"},
		{name: "stayman and invite", calls: "1NT P", hand: "KQ32.Q32.J32.432", want: "2C 2NT"},
		{name: "complete transfer", calls: "1NT P 2D P", hand: "AK2.KQ3.QJ4.J432", want: "2H"},
		{name: "stayman reply without major", calls: "1NT P 2C P", hand: "AK2.KQ3.QJ4.J432", want: "2D"},
		{name: "single raise and 1NT", calls: "1S P", hand: "K32.Q432.J432.32", want: "2S 1NT"},
		{name: "game raise with jacoby", calls: "1H P", hand: "AK2.KQ32.K432.32", want: "4H 2NT 2D"},
		{name: "one-level new suit", calls: "1H P", hand: "KJ32.32.Q432.432", want: "1NT 1S"},
		{name: "too weak over major", calls: "1S P", hand: "5432.432.432.432", want: "P"},
		{name: "major over minor", calls: "1D P", hand: "KJ32.Q32.432.432", want: "1S"},
		{name: "minor raise", calls: "1C P", hand: "K32.Q32.432.J432", want: "1NT 2C"},
		{name: "limit minor raise", calls: "1D P", hand: "A32.K2.KJ432.432", want: "3D"},
		{name: "3NT over minor", calls: "1C P", hand: "A32.K32.KQ2.J432", want: "3NT"},
		{name: "waiting over 2C", calls: "2C P", hand: "432.432.5432.432", want: "2D"},
		{name: "positive over 2C", calls: "2C P", hand: "KQ432.A32.32.432", want: "2D 2S"},
		{name: "very weak over 2NT", calls: "2NT P", hand: "5432.J32.432.432", want: "P"},
		{name: "game over 2NT", calls: "2NT P", hand: "K432.J32.432.432", want: "3NT"},
		{name: "raise preempt to game", calls: "2H P", hand: "AK2.K32.AQ32.432", want: "4H"},
		{name: "redouble", calls: "1H X", hand: "AK32.432.K32.432", want: "XX"},
		{name: "escape from double", calls: "1H X", hand: "5432.2.98765.432", want: "2D"},
		{name: "takeout double", calls: "1H", hand: "AK32.2.KQ32.Q432", want: "X"},
		{name: "one-level overcall", calls: "1H", hand: "AKJ32.32.Q32.432", want: "1S"},
		{name: "two-level overcall", calls: "1S", hand: "32.AKJ32.Q32.432", want: "2H"},
		{name: "weak jump overcall", calls: "1H", hand: "KQJ432.32.432.32", want: "2S"},
		{name: "1NT overcall", calls: "1H", hand: "AQ2.KJ3.KQ32.432", want: "1NT"},
		{name: "penalty double of 1NT", calls: "1NT", hand: "AQ2.KJ3.KQ32.432", want: "X"},
		{name: "pass over 1NT", calls: "1NT", hand: "Q32.J32.5432.432", want: "P"},
		{name: "advance partner's double", calls: "1H X P", hand: "5432.432.98765.2", want: "2D"},
		{name: "leave penalty double", calls: "1NT X P", hand: "5432.432.98765.2", want: "P"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(mustHand(t, tt.hand), mustLedger(t, game.North, tt.calls))
			if callsOf(got) != tt.want {
				t.Fatalf("Advise = %q, want %q", callsOf(got), tt.want)
			}
		})
	}
}

func TestAdviseOneNTRangeLabel(t *testing.T) {
	got := Advise(mustHand(t, "AK2.KQ3.QJ4.J432"), ledger.New(game.East))
	if len(got) == 0 || got[0].Call != game.Bid(1, game.NoTrump) || got[0].Range != "15-17" {
		t.Fatalf("first suggestion = %+v, want 1NT with range 15-17", got)
	}
}

func TestAceAskingReplies(t *testing.T) {
	hands := []string{
		"KQJ2.KQJ.KQJ.432",
		"AQJ2.KQJ.KQJ.432",
		"AQJ2.AQJ.KQJ.432",
		"AQJ2.AQJ.AQJ.432",
		"AQJ2.AQJ.AQJ.A32",
	}
	tests := []struct {
		name  string
		calls string
		want  []string
	}{
		{name: "key card blackwood", calls: "1S P 3S P 4NT P", want: []string{"5C", "5D", "5H", "5S", "5C"}},
		{name: "gerber", calls: "1NT P 4C P", want: []string{"4D", "4H", "4S", "4NT", "4D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for aces, raw := range hands {
				h := mustHand(t, raw)
				if h.Aces() != aces {
					t.Fatalf("hand %q has %d aces, want %d", raw, h.Aces(), aces)
				}
				got := Advise(h, mustLedger(t, game.North, tt.calls))
				if callsOf(got) != tt.want[aces] {
					t.Fatalf("%d aces: Advise = %q, want %s", aces, callsOf(got), tt.want[aces])
				}
			}
		})
	}
}

func TestAdviseFinishedAuction(t *testing.T) {
	if got := Advise(mustHand(t, "AK2.KQ3.QJ4.J432"), mustLedger(t, game.North, "1C P P P")); got != nil {
		t.Fatalf("Advise on finished auction = %v, want nil", got)
	}
}

func TestAdviseOnlyLegalCalls(t *testing.T) {
	auctions := []string{"", "1NT P", "1H", "1H X", "1S P 3S P 4NT P", "2C P", "3S", "7C", "1H X P", "1NT X P", "1S P 2S P 3NT P"}
	hands := []string{"AK2.KQ3.QJ4.J432", "5432.2.98765.432", "AKQ2.AKQ.KQ2.432", "KQJ5432.32.432.2", "AQJ2.AQJ.AQJ.A32"}
	for _, raw := range auctions {
		for _, hand := range hands {
			l := mustLedger(t, game.North, raw)
			got := Advise(mustHand(t, hand), l)
			if len(got) == 0 {
				t.Fatalf("%q / %q: empty suggestion list", raw, hand)
			}
			seen := map[game.Call]bool{}
			for _, s := range got {
				if err := l.Validate(s.Call); err != nil {
					t.Fatalf("%q / %q: suggested illegal %v: %v", raw, hand, s.Call, err)
				}
				if seen[s.Call] {
					t.Fatalf("%q / %q: duplicate %v", raw, hand, s.Call)
				}
				seen[s.Call] = true
				if s.Reason == "" {
					t.Fatalf("%q / %q: %v has no reason", raw, hand, s.Call)
				}
			}
		}
	}
}

func TestSlamLayering(t *testing.T) {
	tests := []struct {
		name  string
		calls string
		hand  string
		want  string
		first string
	}{
		{name: "gerber after 1NT", calls: "1NT P", hand: "AK2.KQ3.AQ4.J432", want: "4NT 4C"},
		{name: "nothing below 32", calls: "1NT P", hand: "K32.Q32.J432.432", want: ""},
		{name: "key card with a fit", calls: "1S P 2S P 3NT P", hand: "K32.Q32.QJ32.432", want: "4NT", first: "Key Card Blackwood"},
		{name: "grand slam with a fit", calls: "1S P 2S P 3NT P", hand: "K32.KQ2.QJ43.K32", want: "4NT 7NT", first: "Key Card Blackwood"},
		{name: "quantitative without a fit", calls: "1D P 1H P 3NT P", hand: "K32.Q32.QJ32.432", want: "4NT 4C", first: "Quantitative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := mustLedger(t, game.North, tt.calls)
			got := slamSuggestions(mustHand(t, tt.hand), l, l.CurrentSeat())
			if callsOf(got) != tt.want {
				t.Fatalf("slam layer = %q, want %q", callsOf(got), tt.want)
			}
			if tt.first != "" && !strings.HasPrefix(got[0].Reason, tt.first) {
				t.Fatalf("first reason = %q", got[0].Reason)
			}
		})
	}
	l := mustLedger(t, game.North, "1S P 2S P 3NT P")
	full := Advise(mustHand(t, "K32.KQ2.QJ43.K32"), l)
	if callsOf(full) != "P 4NT 7NT" {
		t.Fatalf("Advise with slam layer = %q", callsOf(full))
	}
	if !strings.HasPrefix(full[1].Reason, "Key Card Blackwood") {
		t.Fatalf("4NT reason = %q, want key card ask", full[1].Reason)
	}
	ex := ExplainCall(game.Bid(4, game.NoTrump), l, l.CurrentSeat())
	if ex.Convention != "Key Card Blackwood" {
		t.Fatalf("Explain 4NT convention = %q, want Key Card Blackwood", ex.Convention)
	}
}

func TestAdviseOpenerAfterPartnerAnswers(t *testing.T) {
	tests := []struct {
		name  string
		calls string
		hand  string
	}{
		{name: "after single raise", calls: "1S P 2S P", hand: "AKJ32.KQ3.Q2.K32"},
		{name: "after limit raise", calls: "1H P 3H P", hand: "A32.KQJ32.Q2.432"},
		{name: "after transfer completion", calls: "1NT P 2D P 2H P", hand: "32.QJ432.432.432"},
		{name: "after stayman reply", calls: "1NT P 2C P 2H P", hand: "Q432.J32.J32.Q32"},
		{name: "after new suit reply", calls: "1D P 1S P", hand: "A32.K2.KQ432.432"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(mustHand(t, tt.hand), mustLedger(t, game.North, tt.calls))
			if callsOf(got) != "P" {
				t.Fatalf("Advise = %q, want P", callsOf(got))
			}
			if strings.Contains(got[0].Reason, "preempt") {
				t.Fatalf("reason = %q treats partner's answer as a preempt", got[0].Reason)
			}
		})
	}
}

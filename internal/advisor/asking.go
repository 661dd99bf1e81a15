package advisor

import (
	"fmt"

	"bidding-coach/internal/convention"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

// Ace-count replies, indexed by aces held. Four aces reuse the zero slot.
var (
	keyCardReplies = [5]game.Call{
		game.Bid(5, game.DenomClubs),
		game.Bid(5, game.DenomDiamonds),
		game.Bid(5, game.DenomHearts),
		game.Bid(5, game.DenomSpades),
		game.Bid(5, game.DenomClubs),
	}
	gerberReplies = [5]game.Call{
		game.Bid(4, game.DenomDiamonds),
		game.Bid(4, game.DenomHearts),
		game.Bid(4, game.DenomSpades),
		game.Bid(4, game.NoTrump),
		game.Bid(4, game.DenomDiamonds),
	}
)

// AceReply returns the fixed reply showing aces for the given ask.
func AceReply(ask convention.AskKind, aces int) (game.Call, bool) {
	if aces < 0 || aces > 4 {
		return game.Call{}, false
	}
	switch ask {
	case convention.AskTrump:
		return keyCardReplies[aces], true
	case convention.AskNoTrump:
		return gerberReplies[aces], true
	default:
		return game.Call{}, false
	}
}

// acesShownBy lists the ace counts a reply call can stand for.
func acesShownBy(ask convention.AskKind, c game.Call) []int {
	var out []int
	for aces := 0; aces <= 4; aces++ {
		if reply, ok := AceReply(ask, aces); ok && reply == c {
			out = append(out, aces)
		}
	}
	return out
}

func askingReplySuggestions(h game.Hand, ask convention.AskKind) []Suggestion {
	reply, ok := AceReply(ask, h.Aces())
	if !ok {
		return nil
	}
	name := "Key Card Blackwood (4NT)"
	if ask == convention.AskNoTrump {
		name = "Gerber (4C over no-trump)"
	}
	return []Suggestion{{
		Call:   reply,
		Reason: fmt.Sprintf("Reply to %s: showing %d aces with %s.", name, h.Aces(), reply.Label()),
		Range:  "-",
	}}
}

func redoubleSuggestions(h game.Hand, l *ledger.Ledger) []Suggestion {
	if h.Points() >= RedoubleMin {
		return []Suggestion{suggestAtLeast(game.Redouble, RedoubleMin,
			"Redouble with %d HCP: the hand belongs to our side.", h.Points())}
	}
	suit := h.LongestSuit()
	d := game.DenominationOf(suit)
	level, ok := cheapestLevel(l, d)
	if !ok {
		return nil
	}
	return []Suggestion{{
		Call:   game.Bid(level, d),
		Reason: fmt.Sprintf("Run to your longest suit (%d %s) with only %d HCP.", h.Length(suit), suit.Symbol(), h.Points()),
		Range:  fmt.Sprintf("0-%d", RedoubleMin-1),
	}}
}

package advisor

import (
	"fmt"

	"bidding-coach/internal/convention"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

func competitiveSuggestions(h game.Hand, l *ledger.Ledger, ctx convention.Context) []Suggestion {
	p := h.Points()
	theirs := ctx.Call
	theirSuit, suitContract := theirs.Denom.Suit()

	if last, by, ok := l.LastNonPass(); ok && last.IsDouble() && by == ctx.Seat.Partner() {
		if !suitContract {
			return []Suggestion{{Call: game.Pass, Reason: "Leave partner's penalty double in.", Range: "-"}}
		}
		return advanceDouble(h, l, theirSuit)
	}

	if !suitContract {
		if p >= NTPenaltyDoubleMin {
			return []Suggestion{suggestAtLeast(game.Double, NTPenaltyDoubleMin,
				"Penalty double of %s with %d HCP.", theirs, p)}
		}
		return []Suggestion{{Call: game.Pass, Reason: "No penalty double against no-trump.", Range: fmt.Sprintf("0-%d", NTPenaltyDoubleMin-1)}}
	}

	var out []Suggestion
	if h.Balanced() && p >= TwoNTOvercallMin {
		out = append(out, suggestAtLeast(twoNT, TwoNTOvercallMin, "%d HCP balanced overcall with a stopper.", p))
	}
	if h.Balanced() && OneNTOvercall.Contains(p) {
		out = append(out, suggest(oneNT, OneNTOvercall, "%d HCP balanced overcall with a stopper.", p))
	}

	for _, s := range game.AllSuits {
		n := h.Length(s)
		if s == theirSuit || n < 5 {
			continue
		}
		level, ok := cheapestLevel(l, game.DenominationOf(s))
		if !ok || level > 2 {
			continue
		}
		if SuitOvercall.Contains(p) {
			out = append(out, suggest(game.SuitBid(level, s), SuitOvercall,
				"%d-level overcall: %d %s, %d HCP.", level, n, s.Symbol(), p))
		}
		if n >= WeakTwoLength && JumpOvercall.Contains(p) {
			out = append(out, suggest(game.SuitBid(level+1, s), JumpOvercall,
				"Weak jump overcall: %d %s, %d HCP.", n, s.Symbol(), p))
		}
	}

	if p >= TakeoutDoubleMin && h.Length(theirSuit) <= TakeoutShortMax {
		out = append(out, suggestAtLeast(game.Double, TakeoutDoubleMin,
			"Takeout double: %d HCP, %d cards in %s, support for the unbid suits.", p, h.Length(theirSuit), theirSuit.Symbol()))
	}

	if len(out) == 0 {
		out = append(out, Suggestion{Call: game.Pass, Reason: "No safe overcall or double.", Range: "-"})
	}
	return out
}

func advanceDouble(h game.Hand, l *ledger.Ledger, theirSuit game.Suit) []Suggestion {
	suit := longestSuitExcept(h, theirSuit, true)
	d := game.DenominationOf(suit)
	level, ok := cheapestLevel(l, d)
	if !ok {
		return nil
	}
	return []Suggestion{{
		Call:   game.Bid(level, d),
		Reason: fmt.Sprintf("Answer partner's takeout double in your longest suit (%d %s).", h.Length(suit), suit.Symbol()),
		Range:  "0+",
	}}
}

// Package advisor turns a hand and an auction into ranked call suggestions and
// explains the meaning of individual calls.
package advisor

import (
	"fmt"

	"bidding-coach/internal/convention"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

// Suggestion is one candidate call with its justification. Range is the
// point band the call shows, e.g. "15-17".
type Suggestion struct {
	Call   game.Call
	Reason string
	Range  string
}

// Advise suggests calls for the seat whose turn it is. The list is never
// empty while the auction is open and every entry is legal; nil is returned
// once the auction has finished.
func Advise(h game.Hand, l *ledger.Ledger) []Suggestion {
	if l.IsFinished() {
		return nil
	}
	ctx := convention.Classify(l)
	var out []Suggestion
	switch ctx.Kind {
	case convention.Redoubleable:
		out = redoubleSuggestions(h, l)
	case convention.AskingReply:
		out = askingReplySuggestions(h, ctx.Ask)
	case convention.Opening:
		out = openingSuggestions(h)
	case convention.Response:
		out = responseSuggestions(h, l, ctx)
		if !answeringOneNTConvention(l, ctx) {
			out = append(out, slamSuggestions(h, l, ctx.Seat)...)
		}
	case convention.Competitive:
		out = competitiveSuggestions(h, l, ctx)
	}
	return finalize(out, l)
}

// finalize drops duplicate and illegal calls, falling back to Pass.
func finalize(in []Suggestion, l *ledger.Ledger) []Suggestion {
	seen := make(map[game.Call]bool, len(in))
	out := make([]Suggestion, 0, len(in))
	for _, s := range in {
		if seen[s.Call] || l.Validate(s.Call) != nil {
			continue
		}
		seen[s.Call] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		out = append(out, Suggestion{Call: game.Pass, Reason: "No rule applies to this hand here; pass.", Range: "-"})
	}
	return out
}

func suggest(c game.Call, r convention.Range, format string, args ...any) Suggestion {
	return Suggestion{Call: c, Reason: fmt.Sprintf(format, args...), Range: r.String()}
}

func suggestAtLeast(c game.Call, min int, format string, args ...any) Suggestion {
	return Suggestion{Call: c, Reason: fmt.Sprintf(format, args...), Range: fmt.Sprintf("%d+", min)}
}

// cheapestLevel is the lowest level at which d outranks the current contract.
func cheapestLevel(l *ledger.Ledger, d game.Denomination) (int, bool) {
	contract, _, ok := l.LastContract()
	if !ok {
		return 1, true
	}
	for level := contract.Level; level <= 7; level++ {
		if game.Bid(level, d).Outranks(contract) {
			return level, true
		}
	}
	return 0, false
}

// longestSuitExcept picks the longest suit other than skip, ties to the higher
// ranking suit.
func longestSuitExcept(h game.Hand, skip game.Suit, hasSkip bool) game.Suit {
	best, found := game.Spades, false
	for _, s := range game.AllSuits {
		if hasSkip && s == skip {
			continue
		}
		if !found || h.Length(s) > h.Length(best) {
			best, found = s, true
		}
	}
	return best
}

func hasFourCardMajor(h game.Hand) bool {
	return h.Length(game.Spades) >= 4 || h.Length(game.Hearts) >= 4
}

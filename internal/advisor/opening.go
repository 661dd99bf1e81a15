package advisor

import (
	"fmt"
	"sort"

	"bidding-coach/internal/game"
)

func openingRank(c game.Call) int {
	if c.IsPass() {
		return 9
	}
	if !c.IsContract() {
		return 8
	}
	switch c.String() {
	case "2C":
		return 0
	case "2NT":
		return 1
	case "1NT":
		return 2
	case "1S", "1H":
		return 3
	case "1D":
		return 4
	case "1C":
		return 5
	case "3S", "3H":
		return 6
	case "2S", "2H":
		return 7
	default:
		return 8
	}
}

func openingSuggestions(h game.Hand) []Suggestion {
	p := h.Points()
	if p >= StrongOpenerMin {
		return []Suggestion{suggestAtLeast(game.Bid(2, game.DenomClubs), StrongOpenerMin,
			"%d HCP: strong, artificial and forcing.", p)}
	}

	spades, hearts := h.Length(game.Spades), h.Length(game.Hearts)
	diamonds, clubs := h.Length(game.Diamonds), h.Length(game.Clubs)

	var out []Suggestion
	if h.Balanced() {
		if TwoNTOpening.Contains(p) {
			out = append(out, suggest(game.Bid(2, game.NoTrump), TwoNTOpening, "%d HCP, balanced.", p))
		}
		if OneNTOpening.Contains(p) {
			out = append(out, suggest(game.Bid(1, game.NoTrump), OneNTOpening, "%d HCP, balanced.", p))
		}
	}

	for _, s := range []game.Suit{game.Hearts, game.Spades} {
		n := h.Length(s)
		if WeakTwo.Contains(p) && n >= WeakTwoLength {
			out = append(out, suggest(game.SuitBid(2, s), WeakTwo, "Weak two: %d %s, %d HCP.", n, s.Symbol(), p))
		}
		if Preempt.Contains(p) && n >= PreemptLength {
			out = append(out, suggest(game.SuitBid(3, s), Preempt, "Preempt: %d %s, %d HCP.", n, s.Symbol(), p))
		}
	}

	if OneLevelOpening.Contains(p) {
		switch {
		case spades >= 5 && spades >= hearts:
			out = append(out, suggest(game.SuitBid(1, game.Spades), OneLevelOpening, "%d HCP and %d spades.", p, spades))
		case hearts >= 5 && hearts > spades:
			out = append(out, suggest(game.SuitBid(1, game.Hearts), OneLevelOpening, "%d HCP and %d hearts.", p, hearts))
		case diamonds >= clubs:
			out = append(out, suggest(game.SuitBid(1, game.Diamonds), OneLevelOpening, "%d HCP, no 5-card major, diamonds at least as long as clubs.", p))
		default:
			out = append(out, suggest(game.SuitBid(1, game.Clubs), OneLevelOpening, "%d HCP, no 5-card major, clubs longer.", p))
		}
	}

	if len(out) == 0 && p < OneLevelOpening.Min {
		out = append(out, Suggestion{
			Call:   game.Pass,
			Reason: fmt.Sprintf("%d HCP: too weak to open and no preempt fits.", p),
			Range:  fmt.Sprintf("0-%d", OneLevelOpening.Min-1),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return openingRank(out[i].Call) < openingRank(out[j].Call)
	})
	return out
}

package game

import (
	"sort"
	"strings"
)

const HandSize = 13

// Hand is an immutable set of 13 distinct cards with its derived counts.
type Hand struct {
	cards  []Card
	points int
	shape  [4]int
	aces   int
}

var balancedShapes = [][4]int{{3, 3, 3, 4}, {2, 3, 4, 4}, {2, 3, 3, 5}}

// NewHand validates the cards and computes points and shape once.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, malformedHand("expected 13 cards, got %d", len(cards))
	}
	seen := make(map[Card]bool, HandSize)
	h := Hand{cards: make([]Card, 0, HandSize)}
	for _, c := range cards {
		if !c.Suit.Valid() || c.Rank < Two || c.Rank > Ace {
			return Hand{}, malformedHand("invalid card %v", c)
		}
		if seen[c] {
			return Hand{}, malformedHand("duplicate card %s", c)
		}
		seen[c] = true
		h.cards = append(h.cards, c)
		h.points += c.Rank.Points()
		h.shape[c.Suit]++
		if c.Rank == Ace {
			h.aces++
		}
	}
	sort.Slice(h.cards, func(i, j int) bool {
		if h.cards[i].Suit != h.cards[j].Suit {
			return h.cards[i].Suit < h.cards[j].Suit
		}
		return h.cards[i].Rank > h.cards[j].Rank
	})
	return h, nil
}

// ParseHand reads either the dotted S.H.D.C group form ("J643.AJ54.A7.T97")
// or 13 space separated rank+suit tokens ("AS KH ...").
func ParseHand(raw string) (Hand, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return Hand{}, malformedHand("empty hand")
	}
	if strings.Contains(s, ".") && !strings.ContainsAny(s, " \t\n") {
		return parseGroups(s)
	}
	return parseTokens(s)
}

func parseGroups(s string) (Hand, error) {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return Hand{}, malformedHand("use four S.H.D.C groups like J643.AJ54.A7.T97, got %d groups", len(groups))
	}
	cards := make([]Card, 0, HandSize)
	for i, g := range groups {
		g = strings.ReplaceAll(g, "10", "T")
		if g == "-" {
			continue
		}
		for _, ch := range g {
			r, ok := ParseRank(string(ch))
			if !ok {
				return Hand{}, malformedHand("bad rank %q", string(ch))
			}
			cards = append(cards, Card{Rank: r, Suit: AllSuits[i]})
		}
	}
	return NewHand(cards)
}

func parseTokens(s string) (Hand, error) {
	toks := strings.Fields(s)
	if len(toks) != HandSize {
		return Hand{}, malformedHand("expected 13 cards, got %d", len(toks))
	}
	cards := make([]Card, 0, HandSize)
	for _, t := range toks {
		c, err := ParseCard(t)
		if err != nil {
			return Hand{}, err
		}
		cards = append(cards, c)
	}
	return NewHand(cards)
}

func (h Hand) Points() int { return h.points }

// Shape returns suit lengths in S,H,D,C order.
func (h Hand) Shape() [4]int { return h.shape }

func (h Hand) Length(s Suit) int { return h.shape[s] }

func (h Hand) Aces() int { return h.aces }

func (h Hand) Balanced() bool { return IsBalanced(h.shape) }

func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// LongestSuit returns the longest suit, ties going to the higher ranking suit.
func (h Hand) LongestSuit() Suit {
	best := Spades
	for _, s := range AllSuits {
		if h.shape[s] > h.shape[best] {
			best = s
		}
	}
	return best
}

// String renders the dotted group form with "-" for voids.
func (h Hand) String() string {
	var groups [4]strings.Builder
	for _, c := range h.cards {
		groups[c.Suit].WriteString(c.Rank.String())
	}
	parts := make([]string, 4)
	for i := range groups {
		parts[i] = groups[i].String()
		if parts[i] == "" {
			parts[i] = "-"
		}
	}
	return strings.Join(parts, ".")
}

// IsBalanced reports whether the sorted shape is 3-3-3-4, 2-3-4-4 or 2-3-3-5.
func IsBalanced(shape [4]int) bool {
	sorted := shape
	sort.Ints(sorted[:])
	for _, b := range balancedShapes {
		if sorted == b {
			return true
		}
	}
	return false
}

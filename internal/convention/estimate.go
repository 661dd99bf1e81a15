package convention

import (
	"fmt"

	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

// Range is an inclusive point band.
type Range struct {
	Min int
	Max int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

func (r Range) Contains(points int) bool {
	return points >= r.Min && points <= r.Max
}

// DefaultRange is assumed when partner's last call tells us nothing.
var DefaultRange = Range{Min: 0, Max: 20}

// RangeOf maps a call to the point band it promises.
func RangeOf(c game.Call) Range {
	if !c.IsContract() {
		return DefaultRange
	}
	switch {
	case c == game.Bid(1, game.NoTrump):
		return Range{15, 17}
	case c == game.Bid(2, game.NoTrump):
		return Range{20, 21}
	case c == game.Bid(3, game.NoTrump):
		return Range{25, 27}
	case c == game.Bid(2, game.DenomClubs):
		return Range{22, 40}
	case c.Level == 1 && c.Denom != game.NoTrump:
		return Range{12, 21}
	default:
		return DefaultRange
	}
}

// PartnerRange estimates partner's strength from partner's most recent
// non-pass call.
func PartnerRange(l *ledger.Ledger, seat game.Seat) Range {
	c, ok := l.LastBy(seat.Partner())
	if !ok {
		return DefaultRange
	}
	return RangeOf(c)
}

// TrumpSuitAgreed returns the first major bid at two different levels by
// anyone at the table. It does not check which side bid it.
func TrumpSuitAgreed(l *ledger.Ledger) (game.Suit, bool) {
	levels := map[game.Suit]int{}
	for _, c := range l.Calls() {
		if !c.IsContract() {
			continue
		}
		s, ok := c.Denom.Suit()
		if !ok || !s.IsMajor() {
			continue
		}
		first, seen := levels[s]
		if !seen {
			levels[s] = c.Level
			continue
		}
		if first != c.Level {
			return s, true
		}
	}
	return 0, false
}

// NoTrumpContextExists reports whether any no-trump contract has been bid.
func NoTrumpContextExists(l *ledger.Ledger) bool {
	for _, c := range l.Calls() {
		if c.IsContract() && c.Denom == game.NoTrump {
			return true
		}
	}
	return false
}

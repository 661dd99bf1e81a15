package game

import (
	"fmt"
	"strings"
)

type Denomination int

// Denominations in auction rank order.
const (
	DenomClubs Denomination = iota
	DenomDiamonds
	DenomHearts
	DenomSpades
	NoTrump
)

func (d Denomination) String() string {
	switch d {
	case DenomClubs:
		return "C"
	case DenomDiamonds:
		return "D"
	case DenomHearts:
		return "H"
	case DenomSpades:
		return "S"
	case NoTrump:
		return "NT"
	default:
		return "?"
	}
}

func (d Denomination) Valid() bool {
	return d >= DenomClubs && d <= NoTrump
}

// Suit maps a suit denomination back to its suit; ok is false for no-trump.
func (d Denomination) Suit() (Suit, bool) {
	switch d {
	case DenomClubs:
		return Clubs, true
	case DenomDiamonds:
		return Diamonds, true
	case DenomHearts:
		return Hearts, true
	case DenomSpades:
		return Spades, true
	default:
		return 0, false
	}
}

func DenominationOf(s Suit) Denomination {
	switch s {
	case Clubs:
		return DenomClubs
	case Diamonds:
		return DenomDiamonds
	case Hearts:
		return DenomHearts
	default:
		return DenomSpades
	}
}

type CallKind int

const (
	KindPass CallKind = iota
	KindDouble
	KindRedouble
	KindContract
)

// Call is one turn of the auction. Level and Denom are only meaningful for
// contracts; the zero value is Pass.
type Call struct {
	Kind  CallKind
	Level int
	Denom Denomination
}

var (
	Pass     = Call{Kind: KindPass}
	Double   = Call{Kind: KindDouble}
	Redouble = Call{Kind: KindRedouble}
)

// Bid builds a contract call. It panics on an out-of-range level or
// denomination since callers only use it with constants.
func Bid(level int, d Denomination) Call {
	if level < 1 || level > 7 || !d.Valid() {
		panic(fmt.Sprintf("game: invalid contract %d%s", level, d))
	}
	return Call{Kind: KindContract, Level: level, Denom: d}
}

// SuitBid is Bid for a suit.
func SuitBid(level int, s Suit) Call {
	return Bid(level, DenominationOf(s))
}

func (c Call) IsPass() bool     { return c.Kind == KindPass }
func (c Call) IsDouble() bool   { return c.Kind == KindDouble }
func (c Call) IsRedouble() bool { return c.Kind == KindRedouble }
func (c Call) IsContract() bool { return c.Kind == KindContract }

// Rank orders contract calls: 1C=0 ... 7NT=34. Non-contracts return -1.
func (c Call) Rank() int {
	if !c.IsContract() {
		return -1
	}
	return (c.Level-1)*5 + int(c.Denom)
}

// Outranks reports whether contract c may legally follow contract prev.
func (c Call) Outranks(prev Call) bool {
	return c.IsContract() && c.Rank() > prev.Rank()
}

// Compare orders two calls: passes, doubles and redoubles sort before every
// contract, contracts by rank.
func Compare(a, b Call) int {
	ka, kb := a.sortKey(), b.sortKey()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

func (c Call) sortKey() int {
	if c.IsContract() {
		return 3 + c.Rank()
	}
	return int(c.Kind)
}

func (c Call) String() string {
	switch c.Kind {
	case KindPass:
		return "P"
	case KindDouble:
		return "X"
	case KindRedouble:
		return "XX"
	default:
		return fmt.Sprintf("%d%s", c.Level, c.Denom)
	}
}

// Label is the long display form used in suggestions ("Pass", "Double", "1♠").
func (c Call) Label() string {
	switch c.Kind {
	case KindPass:
		return "Pass"
	case KindDouble:
		return "Double"
	case KindRedouble:
		return "Redouble"
	}
	if s, ok := c.Denom.Suit(); ok {
		return fmt.Sprintf("%d%s", c.Level, s.Symbol())
	}
	return fmt.Sprintf("%dNT", c.Level)
}

// ParseCall accepts P/PASS, X/DBL, XX/RDBL and contracts like 1C, 3NT, 2N, 4♠.
func ParseCall(raw string) (Call, error) {
	tok := strings.ToUpper(strings.TrimSpace(raw))
	switch tok {
	case "P", "PASS":
		return Pass, nil
	case "X", "DBL", "DOUBLE":
		return Double, nil
	case "XX", "RDBL", "REDOUBLE":
		return Redouble, nil
	}
	if len(tok) < 2 || tok[0] < '1' || tok[0] > '7' {
		return Call{}, fmt.Errorf("%w: %q", ErrInvalidCall, raw)
	}
	level := int(tok[0] - '0')
	var d Denomination
	switch rest := tok[1:]; rest {
	case "NT", "N":
		d = NoTrump
	default:
		s, ok := ParseSuit(rest)
		if !ok {
			return Call{}, fmt.Errorf("%w: %q", ErrInvalidCall, raw)
		}
		d = DenominationOf(s)
	}
	return Bid(level, d), nil
}

// ParseCalls splits whitespace or comma separated call text.
func ParseCalls(raw string) ([]Call, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	out := make([]Call, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCall(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

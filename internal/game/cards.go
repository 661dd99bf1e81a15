package game

import "strings"

type Suit int

type Rank int

// Suits are numbered in shape order: spades first, clubs last.
const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// AllSuits lists the suits in shape order.
var AllSuits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

var rankLetters = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var suitLetters = map[Suit]string{Spades: "S", Hearts: "H", Diamonds: "D", Clubs: "C"}

var suitSymbols = map[Suit]string{Spades: "♠", Hearts: "♥", Diamonds: "♦", Clubs: "♣"}

func (s Suit) String() string {
	return suitLetters[s]
}

func (s Suit) Symbol() string {
	return suitSymbols[s]
}

func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

func (s Suit) IsMajor() bool {
	return s == Spades || s == Hearts
}

func (r Rank) String() string {
	return rankLetters[r]
}

// Points is the high card value of the rank: A=4, K=3, Q=2, J=1.
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 4
	case King:
		return 3
	case Queen:
		return 2
	case Jack:
		return 1
	default:
		return 0
	}
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseSuit accepts a suit letter or symbol.
func ParseSuit(raw string) (Suit, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "S", "♠":
		return Spades, true
	case "H", "♥":
		return Hearts, true
	case "D", "♦":
		return Diamonds, true
	case "C", "♣":
		return Clubs, true
	default:
		return 0, false
	}
}

// ParseRank accepts 2-9, T or 10, J, Q, K, A.
func ParseRank(raw string) (Rank, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "2":
		return Two, true
	case "3":
		return Three, true
	case "4":
		return Four, true
	case "5":
		return Five, true
	case "6":
		return Six, true
	case "7":
		return Seven, true
	case "8":
		return Eight, true
	case "9":
		return Nine, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	default:
		return 0, false
	}
}

// ParseCard parses a rank+suit token such as "AS" or "TD".
func ParseCard(raw string) (Card, error) {
	tok := strings.ToUpper(strings.TrimSpace(raw))
	if len(tok) != 2 {
		return Card{}, malformedHand("card %q must be rank+suit like AS or TD", raw)
	}
	r, ok := ParseRank(tok[:1])
	if !ok {
		return Card{}, malformedHand("bad rank in card %q", raw)
	}
	s, ok := ParseSuit(tok[1:])
	if !ok {
		return Card{}, malformedHand("bad suit in card %q", raw)
	}
	return Card{Rank: r, Suit: s}, nil
}

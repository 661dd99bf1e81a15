package game

import (
	"errors"
	"testing"
)

func TestParseCall(t *testing.T) {
	tests := []struct {
		raw  string
		want Call
	}{
		{"P", Pass},
		{"pass", Pass},
		{"X", Double},
		{"dbl", Double},
		{"XX", Redouble},
		{"1C", Bid(1, DenomClubs)},
		{"3nt", Bid(3, NoTrump)},
		{"2N", Bid(2, NoTrump)},
		{"4♠", Bid(4, DenomSpades)},
		{" 7d ", Bid(7, DenomDiamonds)},
	}
	for _, tt := range tests {
		got, err := ParseCall(tt.raw)
		if err != nil {
			t.Fatalf("ParseCall(%q) error = %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCall(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseCallInvalid(t *testing.T) {
	for _, raw := range []string{"", "8C", "0NT", "1Z", "XXX", "NT", "1"} {
		if _, err := ParseCall(raw); !errors.Is(err, ErrInvalidCall) {
			t.Fatalf("ParseCall(%q) error = %v, want ErrInvalidCall", raw, err)
		}
	}
}

func TestCallOrdering(t *testing.T) {
	ordered := []Call{
		Bid(1, DenomClubs), Bid(1, DenomDiamonds), Bid(1, DenomHearts), Bid(1, DenomSpades), Bid(1, NoTrump),
		Bid(2, DenomClubs), Bid(4, NoTrump), Bid(5, DenomClubs), Bid(7, NoTrump),
	}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i].Outranks(ordered[i-1]) {
			t.Fatalf("%v should outrank %v", ordered[i], ordered[i-1])
		}
		if ordered[i-1].Outranks(ordered[i]) {
			t.Fatalf("%v should not outrank %v", ordered[i-1], ordered[i])
		}
		if Compare(ordered[i-1], ordered[i]) != -1 {
			t.Fatalf("Compare(%v, %v) != -1", ordered[i-1], ordered[i])
		}
	}
	if Bid(7, NoTrump).Rank() != 34 {
		t.Fatalf("7NT rank = %d, want 34", Bid(7, NoTrump).Rank())
	}
	if Compare(Pass, Bid(1, DenomClubs)) != -1 || Compare(Double, Double) != 0 {
		t.Fatal("non-contract calls must sort before contracts")
	}
}

func TestCallStringRoundTrip(t *testing.T) {
	for _, c := range []Call{Pass, Double, Redouble, Bid(1, NoTrump), Bid(4, DenomHearts), SuitBid(2, Clubs)} {
		got, err := ParseCall(c.String())
		if err != nil || got != c {
			t.Fatalf("round trip %v -> %q -> %v (%v)", c, c.String(), got, err)
		}
	}
	if SuitBid(1, Spades).Label() != "1♠" || Bid(3, NoTrump).Label() != "3NT" || Pass.Label() != "Pass" {
		t.Fatal("unexpected labels")
	}
}

func TestSeatRotation(t *testing.T) {
	if North.Next(1) != East || West.Next(1) != North || South.Next(-1) != East {
		t.Fatal("rotation is N->E->S->W")
	}
	if North.Partner() != South || East.Partner() != West {
		t.Fatal("partner is two seats round")
	}
	if !North.SameSide(South) || North.SameSide(East) {
		t.Fatal("unexpected sides")
	}
	if s, err := ParseSeat("west"); err != nil || s != West {
		t.Fatalf("ParseSeat(west) = %v, %v", s, err)
	}
	if _, err := ParseSeat("Z"); !errors.Is(err, ErrInvalidSeat) {
		t.Fatalf("ParseSeat(Z) error = %v", err)
	}
}

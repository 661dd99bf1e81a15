package ledger

import "bidding-coach/internal/game"

// Result is the outcome of a finished auction.
type Result struct {
	PassedOut   bool
	Contract    game.Call
	Declarer    game.Seat
	Dummy       game.Seat
	OpeningLead game.Seat
	Doubled     bool
	Redoubled   bool
}

// Result reports the final contract once the auction is finished. The
// declarer is whoever on the contracting side first named the final
// denomination.
func (l *Ledger) Result() (Result, bool) {
	if !l.IsFinished() {
		return Result{}, false
	}
	contract, by, ok := l.LastContract()
	if !ok {
		return Result{PassedOut: true}, true
	}
	res := Result{Contract: contract, Declarer: by}
	// Only the latest X or XX after the contract counts.
scan:
	for i := len(l.calls) - 1; i >= 0; i-- {
		switch c := l.calls[i]; {
		case c.IsContract():
			break scan
		case c.IsRedouble():
			res.Redoubled = true
			break scan
		case c.IsDouble():
			res.Doubled = true
			break scan
		}
	}
	for i, c := range l.calls {
		seat := l.seatAt(i)
		if c.IsContract() && c.Denom == contract.Denom && seat.SameSide(by) {
			res.Declarer = seat
			break
		}
	}
	res.Dummy = res.Declarer.Partner()
	res.OpeningLead = res.Declarer.Next(1)
	return res, true
}

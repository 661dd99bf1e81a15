// Package ledger records the calls of one auction. Only the dealer and the
// ordered call list are stored; whose turn it is, the pass count and whether
// the auction is over are all derived from them on demand.
package ledger

import (
	"bidding-coach/internal/game"
)

// Entry is one recorded call together with the seat that made it.
type Entry struct {
	Seat game.Seat
	Call game.Call
}

type Ledger struct {
	dealer game.Seat
	calls  []game.Call
}

func New(dealer game.Seat) *Ledger {
	return &Ledger{dealer: dealer, calls: make([]game.Call, 0, 16)}
}

// Replay builds a ledger by appending calls in order, stopping at the first
// illegal one.
func Replay(dealer game.Seat, calls []game.Call) (*Ledger, error) {
	if !dealer.Valid() {
		return nil, game.ErrInvalidSeat
	}
	l := New(dealer)
	for _, c := range calls {
		if err := l.Append(c); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Ledger) Dealer() game.Seat { return l.dealer }

func (l *Ledger) Len() int { return len(l.calls) }

func (l *Ledger) Calls() []game.Call {
	return append([]game.Call(nil), l.calls...)
}

func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.calls))
	for i, c := range l.calls {
		out[i] = Entry{Seat: l.seatAt(i), Call: c}
	}
	return out
}

// Prefix returns an independent ledger holding the first n calls.
func (l *Ledger) Prefix(n int) *Ledger {
	if n < 0 {
		n = 0
	}
	if n > len(l.calls) {
		n = len(l.calls)
	}
	return &Ledger{dealer: l.dealer, calls: append(make([]game.Call, 0, n), l.calls[:n]...)}
}

func (l *Ledger) seatAt(i int) game.Seat {
	return l.dealer.Next(i)
}

// SeatAt returns the seat that made (or will make) call number i.
func (l *Ledger) SeatAt(i int) game.Seat {
	return l.seatAt(i)
}

func (l *Ledger) CurrentSeat() game.Seat {
	return l.seatAt(len(l.calls) % 4)
}

func (l *Ledger) LastCall() (game.Call, bool) {
	if len(l.calls) == 0 {
		return game.Call{}, false
	}
	return l.calls[len(l.calls)-1], true
}

func (l *Ledger) LastCaller() (game.Seat, bool) {
	if len(l.calls) == 0 {
		return 0, false
	}
	return l.seatAt(len(l.calls) - 1), true
}

// LastContract returns the most recent contract call and its maker.
func (l *Ledger) LastContract() (game.Call, game.Seat, bool) {
	for i := len(l.calls) - 1; i >= 0; i-- {
		if l.calls[i].IsContract() {
			return l.calls[i], l.seatAt(i), true
		}
	}
	return game.Call{}, 0, false
}

// LastNonPass returns the most recent call that is not a pass.
func (l *Ledger) LastNonPass() (game.Call, game.Seat, bool) {
	for i := len(l.calls) - 1; i >= 0; i-- {
		if !l.calls[i].IsPass() {
			return l.calls[i], l.seatAt(i), true
		}
	}
	return game.Call{}, 0, false
}

// LastBy returns the most recent non-pass call made by seat.
func (l *Ledger) LastBy(seat game.Seat) (game.Call, bool) {
	for i := len(l.calls) - 1; i >= 0; i-- {
		if l.seatAt(i) == seat && !l.calls[i].IsPass() {
			return l.calls[i], true
		}
	}
	return game.Call{}, false
}

// HasBid reports whether any non-pass call has been made.
func (l *Ledger) HasBid() bool {
	_, _, ok := l.LastNonPass()
	return ok
}

// PassCount is the number of consecutive passes at the end of the auction.
func (l *Ledger) PassCount() int {
	n := 0
	for i := len(l.calls) - 1; i >= 0 && l.calls[i].IsPass(); i-- {
		n++
	}
	return n
}

// IsFinished is true once at least four calls exist and the last three are
// passes. Four opening passes therefore end the auction too.
func (l *Ledger) IsFinished() bool {
	return len(l.calls) >= 4 && l.PassCount() >= 3
}

func (l *Ledger) State() game.AuctionState {
	switch {
	case len(l.calls) == 0:
		return game.AuctionNotStarted
	case l.IsFinished():
		return game.AuctionFinished
	default:
		return game.AuctionInProgress
	}
}

// Validate checks call against the auction without recording it.
func (l *Ledger) Validate(call game.Call) error {
	seat := l.CurrentSeat()
	illegal := func(reason string) error {
		return &game.IllegalCallError{Call: call, Seat: seat, Reason: reason}
	}
	if l.IsFinished() {
		return illegal("auction is finished")
	}
	switch call.Kind {
	case game.KindPass:
		return nil
	case game.KindContract:
		if call.Level < 1 || call.Level > 7 || !call.Denom.Valid() {
			return illegal("contract out of range")
		}
		if prev, _, ok := l.LastContract(); ok && !call.Outranks(prev) {
			return illegal("must outrank " + prev.String())
		}
		return nil
	case game.KindDouble:
		last, by, ok := l.LastNonPass()
		if !ok || !last.IsContract() {
			return illegal("nothing to double")
		}
		if by.SameSide(seat) {
			return illegal("cannot double own side")
		}
		return nil
	case game.KindRedouble:
		last, by, ok := l.LastNonPass()
		if !ok || !last.IsDouble() {
			return illegal("nothing to redouble")
		}
		if by.SameSide(seat) {
			return illegal("cannot redouble own side's double")
		}
		return nil
	default:
		return illegal("unknown call")
	}
}

// Append records call for the current seat. The ledger is unchanged when the
// call is illegal.
func (l *Ledger) Append(call game.Call) error {
	if err := l.Validate(call); err != nil {
		return err
	}
	l.calls = append(l.calls, call)
	return nil
}

// UndoLast removes the most recent call. It reports false on an empty ledger.
func (l *Ledger) UndoLast() bool {
	if len(l.calls) == 0 {
		return false
	}
	l.calls = l.calls[:len(l.calls)-1]
	return true
}

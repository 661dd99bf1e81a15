// Package convention classifies whose turn it is in an auction and which
// family of rules applies to it.
package convention

import (
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

type Kind int

const (
	NoRule Kind = iota
	Redoubleable
	AskingReply
	Opening
	Response
	Competitive
)

func (k Kind) String() string {
	switch k {
	case Redoubleable:
		return "redoubleable"
	case AskingReply:
		return "asking_reply"
	case Opening:
		return "opening"
	case Response:
		return "response"
	case Competitive:
		return "competitive"
	default:
		return "no_rule"
	}
}

// AskKind names the ace-asking convention partner used.
type AskKind int

const (
	AskNone AskKind = iota
	// AskTrump is 4NT Key Card Blackwood once a major has been agreed.
	AskTrump
	// AskNoTrump is 4C Gerber in a no-trump auction.
	AskNoTrump
)

func (a AskKind) String() string {
	switch a {
	case AskTrump:
		return "key_card_blackwood"
	case AskNoTrump:
		return "gerber"
	default:
		return "none"
	}
}

// Context is the classification of one seat's turn.
type Context struct {
	Kind Kind
	Seat game.Seat
	// Call is the call the context reacts to: the opponent's double, partner's
	// ask or response trigger, or the opponent's contract.
	Call game.Call
	By   game.Seat
	Ask  AskKind
}

func Classify(l *ledger.Ledger) Context {
	return ClassifyFor(l, l.CurrentSeat())
}

// ClassifyFor classifies the auction from seat's point of view. The first
// matching rule wins: redouble chance, ace-asking reply, opening, response to
// partner, competitive action.
func ClassifyFor(l *ledger.Ledger, seat game.Seat) Context {
	ctx := Context{Kind: NoRule, Seat: seat}
	if l.IsFinished() {
		return ctx
	}

	if last, ok := l.LastCall(); ok && last.IsDouble() {
		by, _ := l.LastCaller()
		if !by.SameSide(seat) {
			ctx.Kind, ctx.Call, ctx.By = Redoubleable, last, by
			return ctx
		}
	}

	nonPass, by, ok := l.LastNonPass()
	if !ok {
		ctx.Kind = Opening
		return ctx
	}
	if by == seat.Partner() {
		if ask := askingKind(l, nonPass); ask != AskNone {
			ctx.Kind, ctx.Call, ctx.By, ctx.Ask = AskingReply, nonPass, by, ask
			return ctx
		}
	}

	contract, maker, ok := l.LastContract()
	if !ok {
		return ctx
	}
	ctx.Call, ctx.By = contract, maker
	switch {
	case maker == seat.Partner():
		ctx.Kind = Response
	case !maker.SameSide(seat):
		ctx.Kind = Competitive
	}
	// Our own contract standing undisturbed has no rebid table.
	return ctx
}

func askingKind(l *ledger.Ledger, call game.Call) AskKind {
	if !call.IsContract() || call.Level != 4 {
		return AskNone
	}
	switch call.Denom {
	case game.NoTrump:
		if _, ok := TrumpSuitAgreed(l); ok {
			return AskTrump
		}
	case game.DenomClubs:
		if NoTrumpContextExists(l) {
			return AskNoTrump
		}
	}
	return AskNone
}

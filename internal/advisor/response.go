package advisor

import (
	"fmt"

	"bidding-coach/internal/convention"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

var (
	oneNT = game.Bid(1, game.NoTrump)
	twoNT = game.Bid(2, game.NoTrump)
	twoC  = game.Bid(2, game.DenomClubs)
)

func responseSuggestions(h game.Hand, l *ledger.Ledger, ctx convention.Context) []Suggestion {
	partner := ctx.Call
	if answeringOneNTConvention(l, ctx) {
		return oneNTRebid(h, partner)
	}
	if !respondingToOpening(l, ctx) {
		return []Suggestion{{Call: game.Pass, Reason: "No rule matched partner's call.", Range: "-"}}
	}

	switch {
	case partner == oneNT:
		return overOneNT(h)
	case partner == twoNT:
		return overTwoNT(h)
	case partner == twoC:
		return overTwoClubs(h)
	case partner.Level == 1 && (partner.Denom == game.DenomHearts || partner.Denom == game.DenomSpades):
		return overOneMajor(h, l, partner)
	case partner.Level == 1 && (partner.Denom == game.DenomClubs || partner.Denom == game.DenomDiamonds):
		return overOneMinor(h, partner)
	case (partner.Level == 2 || partner.Level == 3) && (partner.Denom == game.DenomHearts || partner.Denom == game.DenomSpades):
		return overPreempt(h, partner)
	}
	return []Suggestion{{Call: game.Pass, Reason: "No rule matched partner's call.", Range: "-"}}
}

// answeringOneNTConvention reports whether partner's last call is Stayman or
// a transfer over our own 1NT opening.
func answeringOneNTConvention(l *ledger.Ledger, ctx convention.Context) bool {
	own, ok := l.LastBy(ctx.Seat)
	if !ok || own != oneNT {
		return false
	}
	p := ctx.Call
	return p.Level == 2 && (p.Denom == game.DenomClubs || p.Denom == game.DenomDiamonds || p.Denom == game.DenomHearts)
}

// respondingToOpening reports whether partner's call is partner's first bid
// and our side's seat has not bid yet, so the response tables apply. Raises of
// our own opening and replies to our conventions are not openings.
func respondingToOpening(l *ledger.Ledger, ctx convention.Context) bool {
	partnerBids := 0
	for _, e := range l.Entries() {
		if !e.Call.IsContract() {
			continue
		}
		switch e.Seat {
		case ctx.Seat:
			return false
		case ctx.Seat.Partner():
			partnerBids++
		}
	}
	return partnerBids == 1
}

// oneNTRebid answers partner's Stayman or transfer after our 1NT opening.
func oneNTRebid(h game.Hand, partner game.Call) []Suggestion {
	switch partner.Denom {
	case game.DenomClubs:
		var out []Suggestion
		for _, s := range []game.Suit{game.Hearts, game.Spades} {
			if h.Length(s) >= 4 {
				out = append(out, suggest(game.SuitBid(2, s), OneNTOpening, "Stayman reply: four %s.", s.Symbol()))
			}
		}
		if len(out) == 0 {
			out = append(out, suggest(game.Bid(2, game.DenomDiamonds), OneNTOpening, "Stayman reply: no 4-card major."))
		}
		return out
	case game.DenomDiamonds:
		return []Suggestion{suggest(game.SuitBid(2, game.Hearts), OneNTOpening, "Complete partner's transfer to hearts.")}
	case game.DenomHearts:
		return []Suggestion{suggest(game.SuitBid(2, game.Spades), OneNTOpening, "Complete partner's transfer to spades.")}
	}
	return nil
}

func overOneNT(h game.Hand) []Suggestion {
	p := h.Points()
	spades, hearts := h.Length(game.Spades), h.Length(game.Hearts)
	combined := convention.Range{Min: p + OneNTOpening.Min, Max: p + OneNTOpening.Max}

	var out []Suggestion
	if hearts >= 5 {
		out = append(out, Suggestion{Call: game.Bid(2, game.DenomDiamonds), Reason: "Jacoby transfer to hearts: 5+ hearts.", Range: "0+"})
	}
	if spades >= 5 {
		out = append(out, Suggestion{Call: game.Bid(2, game.DenomHearts), Reason: "Jacoby transfer to spades: 5+ spades.", Range: "0+"})
	}
	if hasFourCardMajor(h) && p >= StaymanMin {
		out = append(out, suggestAtLeast(twoC, StaymanMin, "Stayman: asks opener for a 4-card major."))
	}
	if spades < 5 && hearts < 5 {
		switch {
		case p <= NTResponsePassMax:
			out = append(out, Suggestion{Call: game.Pass, Reason: fmt.Sprintf("%d HCP and no 5-card major.", p), Range: fmt.Sprintf("0-%d", NTResponsePassMax)})
		case NTInvite.Contains(p):
			out = append(out, suggest(twoNT, NTInvite, "Invite: combined about %s.", combined))
		default:
			out = append(out, suggestAtLeast(game.Bid(3, game.NoTrump), NTResponseGameMin, "Game: combined about %s.", combined))
			if p >= NTQuantitativeMin {
				out = append(out, suggestAtLeast(game.Bid(4, game.NoTrump), NTQuantitativeMin, "Quantitative: invites 6NT opposite 15-17."))
			}
			if p >= NTSmallSlamMin {
				out = append(out, suggestAtLeast(game.Bid(6, game.NoTrump), NTSmallSlamMin, "Small slam: combined about %s.", combined))
			}
			if p >= NTGrandSlamMin {
				out = append(out, suggestAtLeast(game.Bid(7, game.NoTrump), NTGrandSlamMin, "Grand slam: combined about %s.", combined))
			}
		}
	}
	if p >= NTGerberMin {
		out = append(out, suggestAtLeast(game.Bid(4, game.DenomClubs), NTGerberMin, "Gerber: asks for aces over no-trump."))
	}
	return out
}

func overTwoNT(h game.Hand) []Suggestion {
	p := h.Points()
	combined := convention.Range{Min: p + TwoNTOpening.Min, Max: p + TwoNTOpening.Max}
	if p <= TwoNTPassMax {
		return []Suggestion{{Call: game.Pass, Reason: "Very weak opposite 20-21.", Range: fmt.Sprintf("0-%d", TwoNTPassMax)}}
	}
	out := []Suggestion{suggestAtLeast(game.Bid(3, game.NoTrump), TwoNTPassMax+1, "Game opposite 20-21: combined about %s.", combined)}
	if p >= TwoNTGerberMin {
		out = append(out, suggestAtLeast(game.Bid(4, game.DenomClubs), TwoNTGerberMin, "Gerber: asks for aces."))
	}
	if p >= TwoNTQuantitative {
		out = append(out, suggestAtLeast(game.Bid(4, game.NoTrump), TwoNTQuantitative, "Quantitative: invites 6NT, combined about %s.", combined))
	}
	if p >= TwoNTSmallSlamMin {
		out = append(out, suggestAtLeast(game.Bid(6, game.NoTrump), TwoNTSmallSlamMin, "Small slam: combined about %s.", combined))
	}
	if p >= TwoNTGrandSlamMin {
		out = append(out, suggestAtLeast(game.Bid(7, game.NoTrump), TwoNTGrandSlamMin, "Grand slam: combined about %s.", combined))
	}
	return out
}

func overTwoClubs(h game.Hand) []Suggestion {
	out := []Suggestion{{Call: game.Bid(2, game.DenomDiamonds), Reason: "Waiting response, artificial; the auction is game forcing.", Range: "0+"}}
	suit := h.LongestSuit()
	if h.Points() >= PositiveOver2CMin && h.Length(suit) >= 5 {
		level := 2
		if !suit.IsMajor() {
			level = 3
		}
		out = append(out, suggestAtLeast(game.SuitBid(level, suit), PositiveOver2CMin,
			"Positive response: %d %s and %d HCP.", h.Length(suit), suit.Symbol(), h.Points()))
	}
	return out
}

func overOneMajor(h game.Hand, l *ledger.Ledger, partner game.Call) []Suggestion {
	p := h.Points()
	trump, _ := partner.Denom.Suit()
	support := h.Length(trump)

	var out []Suggestion
	if support >= 3 {
		switch {
		case SingleRaise.Contains(p):
			out = append(out, suggest(game.SuitBid(2, trump), SingleRaise, "Single raise: %d trumps, %d HCP.", support, p))
		case LimitRaise.Contains(p):
			out = append(out, suggest(game.SuitBid(3, trump), LimitRaise, "Limit raise: %d trumps, %d HCP.", support, p))
		case p >= GameRaiseMin:
			out = append(out, suggestAtLeast(game.SuitBid(4, trump), GameRaiseMin, "Game raise: %d trumps, %d HCP.", support, p))
			out = append(out, suggestAtLeast(twoNT, GameRaiseMin, "Jacoby 2NT: game forcing raise with slam interest."))
		}
	}
	if OneNTReply.Contains(p) {
		out = append(out, suggest(oneNT, OneNTReply, "%d HCP without a fit.", p))
	}
	for _, s := range []game.Suit{game.Hearts, game.Spades, game.Diamonds, game.Clubs} {
		if s == trump || h.Length(s) < 4 {
			continue
		}
		level, ok := cheapestLevel(l, game.DenominationOf(s))
		if !ok {
			continue
		}
		switch {
		case level == 1 && p >= OneLevelNewSuitMin:
			out = append(out, suggestAtLeast(game.SuitBid(1, s), OneLevelNewSuitMin, "New suit: %d %s, %d HCP.", h.Length(s), s.Symbol(), p))
		case level == 2 && p >= TwoLevelNewSuitMin:
			out = append(out, suggestAtLeast(game.SuitBid(2, s), TwoLevelNewSuitMin, "New suit at the two level: %d %s, %d HCP.", h.Length(s), s.Symbol(), p))
		}
	}
	if len(out) == 0 {
		out = append(out, Suggestion{Call: game.Pass, Reason: "Too weak to respond.", Range: fmt.Sprintf("0-%d", OneLevelNewSuitMin-1)})
	}
	return out
}

func overOneMinor(h game.Hand, partner game.Call) []Suggestion {
	p := h.Points()
	spades, hearts := h.Length(game.Spades), h.Length(game.Hearts)
	minor, _ := partner.Denom.Suit()
	support := h.Length(minor)

	var out []Suggestion
	if spades >= 4 && p >= OneLevelNewSuitMin {
		out = append(out, suggestAtLeast(game.SuitBid(1, game.Spades), OneLevelNewSuitMin, "%d spades, %d HCP.", spades, p))
	}
	if hearts >= 4 && p >= OneLevelNewSuitMin {
		out = append(out, suggestAtLeast(game.SuitBid(1, game.Hearts), OneLevelNewSuitMin, "%d hearts, %d HCP.", hearts, p))
	}
	if !hasFourCardMajor(h) && OneNTReply.Contains(p) {
		out = append(out, suggest(oneNT, OneNTReply, "%d HCP, no 4-card major.", p))
	}
	if support >= 4 && SingleRaise.Contains(p) {
		out = append(out, suggest(game.SuitBid(2, minor), SingleRaise, "Raise %s: %d card support, %d HCP.", minor.Symbol(), support, p))
	}
	if support >= 5 && LimitRaise.Contains(p) {
		out = append(out, suggest(game.SuitBid(3, minor), LimitRaise, "Limit raise in %s: %d card support, %d HCP.", minor.Symbol(), support, p))
	}
	if !hasFourCardMajor(h) && h.Balanced() && MinorGameNT.Contains(p) {
		out = append(out, suggest(game.Bid(3, game.NoTrump), MinorGameNT, "%d HCP balanced, no 4-card major.", p))
	}
	if len(out) == 0 {
		out = append(out, Suggestion{Call: game.Pass, Reason: "Too weak to respond.", Range: fmt.Sprintf("0-%d", OneLevelNewSuitMin-1)})
	}
	return out
}

// overPreempt raises partner's weak two or preempt to game with a fit and
// opening strength.
func overPreempt(h game.Hand, partner game.Call) []Suggestion {
	trump, _ := partner.Denom.Suit()
	if h.Length(trump) >= 3 && h.Points() >= PreemptGameRaise && partner.Level < 4 {
		return []Suggestion{suggestAtLeast(game.SuitBid(4, trump), PreemptGameRaise,
			"Raise partner's preempt to game: %d trumps, %d HCP.", h.Length(trump), h.Points())}
	}
	return []Suggestion{{Call: game.Pass, Reason: "Partner's preempt describes the hand; no game in sight.", Range: "-"}}
}

package advisor

import (
	"fmt"
	"strings"

	"bidding-coach/internal/convention"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

// Explanation describes what a call shows. Convention is empty for natural
// calls.
type Explanation struct {
	Meaning      string
	Convention   string
	PointRange   string
	ImpliedShape string
}

var natural = Explanation{
	Meaning:      "Natural, non-forcing.",
	PointRange:   "Variable.",
	ImpliedShape: "Unspecified.",
}

// Explain parses raw and describes it as if seat made it on top of l.
func Explain(raw string, l *ledger.Ledger, seat game.Seat) (Explanation, error) {
	call, err := game.ParseCall(raw)
	if err != nil {
		return Explanation{}, err
	}
	if !seat.Valid() {
		return Explanation{}, game.ErrInvalidSeat
	}
	return ExplainCall(call, l, seat), nil
}

// ExplainCall applies the same precedence as Advise: redouble, ace-asking
// replies, asks, then the opening, response and competitive tables.
func ExplainCall(call game.Call, l *ledger.Ledger, seat game.Seat) Explanation {
	switch {
	case call.IsPass():
		return Explanation{Meaning: "Pass.", PointRange: "Does not meet requirements for a bid.", ImpliedShape: "N/A"}
	case call.IsRedouble() && convention.ClassifyFor(l, seat).Kind != convention.Redoubleable:
		return Explanation{
			Meaning:      "Redouble: not available, there is no opponents' double to redouble.",
			PointRange:   "N/A",
			ImpliedShape: "N/A",
		}
	case call.IsRedouble():
		return Explanation{
			Meaning:      "Redouble: the hand belongs to our side after the opponents' double.",
			PointRange:   fmt.Sprintf("%d+ HCP", RedoubleMin),
			ImpliedShape: "Unspecified.",
		}
	}

	if e, ok := explainAceReply(call, l, seat); ok {
		return e
	}
	if e, ok := explainAsk(call, l, seat); ok {
		return e
	}

	contract, maker, hasContract := l.LastContract()
	if !l.HasBid() {
		if e, ok := explainOpening(call); ok {
			return e
		}
		return natural
	}
	if hasContract && maker == seat.Partner() {
		if e, ok := explainResponse(call, l, contract); ok {
			return e
		}
	}
	if hasContract && !maker.SameSide(seat) {
		if e, ok := explainCompetitive(call, l, seat, contract); ok {
			return e
		}
	}
	return natural
}

func explainAceReply(call game.Call, l *ledger.Ledger, seat game.Seat) (Explanation, bool) {
	ctx := convention.ClassifyFor(l, seat)
	if ctx.Kind != convention.AskingReply {
		return Explanation{}, false
	}
	aces := acesShownBy(ctx.Ask, call)
	if len(aces) == 0 {
		return Explanation{}, false
	}
	counts := make([]string, len(aces))
	for i, n := range aces {
		counts[i] = fmt.Sprint(n)
	}
	name := "Key Card Blackwood response"
	if ctx.Ask == convention.AskNoTrump {
		name = "Gerber response"
	}
	return Explanation{
		Meaning:      fmt.Sprintf("Shows %s aces.", strings.Join(counts, " or ")),
		Convention:   name,
		PointRange:   "Not applicable.",
		ImpliedShape: "Unspecified.",
	}, true
}

func explainAsk(call game.Call, l *ledger.Ledger, seat game.Seat) (Explanation, bool) {
	if !call.IsContract() || call.Level != 4 {
		return Explanation{}, false
	}
	switch call.Denom {
	case game.NoTrump:
		if suit, ok := convention.TrumpSuitAgreed(l); ok {
			return Explanation{
				Meaning:      fmt.Sprintf("Asks for key cards: four aces and the %s king.", suit.Symbol()),
				Convention:   "Key Card Blackwood",
				PointRange:   "Slam interest.",
				ImpliedShape: fmt.Sprintf("Fit in %s.", suit.Symbol()),
			}, true
		}
		if contract, by, ok := l.LastContract(); ok && by == seat.Partner() && contract.Denom == game.NoTrump {
			return Explanation{
				Meaning:      "Invites 6NT; partner passes with a minimum.",
				Convention:   "Quantitative",
				PointRange:   quantitativeRange(contract),
				ImpliedShape: "Balanced.",
			}, true
		}
	case game.DenomClubs:
		if convention.NoTrumpContextExists(l) {
			return Explanation{
				Meaning:      "Asks for aces after no-trump.",
				Convention:   "Gerber",
				PointRange:   "Slam interest.",
				ImpliedShape: "Unspecified.",
			}, true
		}
	}
	return Explanation{}, false
}

func explainOpening(call game.Call) (Explanation, bool) {
	if !call.IsContract() {
		return Explanation{}, false
	}
	suit, isSuit := call.Denom.Suit()
	switch {
	case call == twoC:
		return Explanation{
			Meaning:      "Strong, artificial and forcing.",
			Convention:   "Strong 2C",
			PointRange:   fmt.Sprintf("%d+ HCP", StrongOpenerMin),
			ImpliedShape: "Any.",
		}, true
	case call == twoNT:
		return Explanation{Meaning: "Balanced opening.", PointRange: hcp(TwoNTOpening), ImpliedShape: "Balanced."}, true
	case call == oneNT:
		return Explanation{Meaning: "Balanced opening.", PointRange: hcp(OneNTOpening), ImpliedShape: "Balanced."}, true
	case call.Level == 1 && isSuit && suit.IsMajor():
		return Explanation{
			Meaning:      fmt.Sprintf("Natural opening in %s.", suit.Symbol()),
			PointRange:   hcp(OneLevelOpening),
			ImpliedShape: fmt.Sprintf("5+ %s.", suit.Symbol()),
		}, true
	case call.Level == 1 && isSuit:
		return Explanation{
			Meaning:      fmt.Sprintf("Natural opening in %s.", suit.Symbol()),
			PointRange:   hcp(OneLevelOpening),
			ImpliedShape: "No 5-card major; 3+ in the minor.",
		}, true
	case call.Level == 2 && isSuit && suit.IsMajor():
		return Explanation{
			Meaning:      "Weak two, preemptive.",
			PointRange:   hcp(WeakTwo),
			ImpliedShape: fmt.Sprintf("%d+ %s.", WeakTwoLength, suit.Symbol()),
		}, true
	case call.Level == 3 && isSuit && suit.IsMajor():
		return Explanation{
			Meaning:      "Preempt.",
			PointRange:   hcp(Preempt),
			ImpliedShape: fmt.Sprintf("%d+ %s.", PreemptLength, suit.Symbol()),
		}, true
	}
	return Explanation{}, false
}

func explainResponse(call game.Call, l *ledger.Ledger, partner game.Call) (Explanation, bool) {
	if !call.IsContract() {
		return Explanation{}, false
	}
	suit, isSuit := call.Denom.Suit()
	partnerSuit, partnerIsSuit := partner.Denom.Suit()

	switch {
	case partner == oneNT:
		switch {
		case call == twoC:
			return Explanation{
				Meaning:      "Artificial, asks for a 4-card major.",
				Convention:   "Stayman",
				PointRange:   fmt.Sprintf("%d+ HCP", StaymanMin),
				ImpliedShape: "At least one 4-card major.",
			}, true
		case call == game.Bid(2, game.DenomDiamonds):
			return Explanation{
				Meaning:      "Artificial, asks opener to bid 2H.",
				Convention:   "Jacoby Transfer to Hearts",
				PointRange:   "Any.",
				ImpliedShape: "5+ hearts.",
			}, true
		case call == game.Bid(2, game.DenomHearts):
			return Explanation{
				Meaning:      "Artificial, asks opener to bid 2S.",
				Convention:   "Jacoby Transfer to Spades",
				PointRange:   "Any.",
				ImpliedShape: "5+ spades.",
			}, true
		case call == twoNT:
			return Explanation{Meaning: "Invites 3NT.", PointRange: hcp(NTInvite), ImpliedShape: "No 5-card major."}, true
		case call == game.Bid(3, game.NoTrump):
			return Explanation{Meaning: "To play.", PointRange: fmt.Sprintf("%d-%d HCP", NTResponseGameMin, NTQuantitativeMin-1), ImpliedShape: "No 5-card major."}, true
		}
	case partner == twoNT && call == game.Bid(3, game.NoTrump):
		return Explanation{Meaning: "To play.", PointRange: fmt.Sprintf("%d-%d HCP", TwoNTPassMax+1, TwoNTQuantitative-1), ImpliedShape: "Unspecified."}, true
	case partner == twoC:
		if call == game.Bid(2, game.DenomDiamonds) {
			return Explanation{Meaning: "Waiting, artificial; game forcing.", Convention: "2D Waiting", PointRange: "Any.", ImpliedShape: "Unspecified."}, true
		}
		if isSuit {
			return Explanation{
				Meaning:      fmt.Sprintf("Positive response in %s.", suit.Symbol()),
				PointRange:   fmt.Sprintf("%d+ HCP", PositiveOver2CMin),
				ImpliedShape: fmt.Sprintf("5+ %s.", suit.Symbol()),
			}, true
		}
	case partner.Level == 1 && partnerIsSuit:
		if isSuit && suit == partnerSuit {
			switch call.Level {
			case 2:
				return Explanation{Meaning: fmt.Sprintf("Simple raise in %s, non-forcing.", suit.Symbol()), PointRange: hcp(SingleRaise), ImpliedShape: raiseShape(suit)}, true
			case 3:
				return Explanation{Meaning: fmt.Sprintf("Limit raise in %s, invitational.", suit.Symbol()), PointRange: hcp(LimitRaise), ImpliedShape: raiseShape(suit)}, true
			case 4:
				if suit.IsMajor() {
					return Explanation{Meaning: fmt.Sprintf("Game raise in %s.", suit.Symbol()), PointRange: fmt.Sprintf("%d+ HCP", GameRaiseMin), ImpliedShape: "3+ card support."}, true
				}
			}
		}
		if call == twoNT && partnerSuit.IsMajor() {
			return Explanation{
				Meaning:      "Game forcing raise with slam interest.",
				Convention:   "Jacoby 2NT",
				PointRange:   fmt.Sprintf("%d+ HCP", GameRaiseMin),
				ImpliedShape: fmt.Sprintf("4+ %s.", partnerSuit.Symbol()),
			}, true
		}
		if call == oneNT {
			return Explanation{Meaning: "No fit, limited.", PointRange: hcp(OneNTReply), ImpliedShape: "No support for partner."}, true
		}
		if call == game.Bid(3, game.NoTrump) && !partnerSuit.IsMajor() {
			return Explanation{Meaning: "To play.", PointRange: hcp(MinorGameNT), ImpliedShape: "Balanced, no 4-card major."}, true
		}
		if isSuit && suit != partnerSuit {
			if level, ok := cheapestLevel(l, call.Denom); ok && level == call.Level {
				floor := OneLevelNewSuitMin
				if level >= 2 {
					floor = TwoLevelNewSuitMin
				}
				return Explanation{
					Meaning:      "New suit, forcing one round.",
					PointRange:   fmt.Sprintf("%d+ HCP", floor),
					ImpliedShape: fmt.Sprintf("4+ %s.", suit.Symbol()),
				}, true
			}
		}
	case partner.Level <= 3 && partnerIsSuit && partnerSuit.IsMajor() && isSuit && suit == partnerSuit && call.Level == 4:
		return Explanation{Meaning: "Raise to game over partner's preempt.", PointRange: fmt.Sprintf("%d+ HCP", PreemptGameRaise), ImpliedShape: "3+ card support."}, true
	}
	return Explanation{}, false
}

func explainCompetitive(call game.Call, l *ledger.Ledger, seat game.Seat, theirs game.Call) (Explanation, bool) {
	theirSuit, suitContract := theirs.Denom.Suit()
	if last, by, ok := l.LastNonPass(); ok && last.IsDouble() && by == seat.Partner() && call.IsContract() {
		return Explanation{
			Meaning:      "Answers partner's takeout double.",
			PointRange:   "Any.",
			ImpliedShape: "Longest suit outside the opponents' suit.",
		}, true
	}
	switch {
	case call.IsDouble() && !suitContract:
		return Explanation{
			Meaning:      "Penalty double.",
			PointRange:   fmt.Sprintf("%d+ HCP", NTPenaltyDoubleMin),
			ImpliedShape: "Unspecified.",
		}, true
	case call.IsDouble():
		return Explanation{
			Meaning:      "Takeout double, not for penalty.",
			Convention:   "Takeout Double",
			PointRange:   fmt.Sprintf("%d+ HCP", TakeoutDoubleMin),
			ImpliedShape: fmt.Sprintf("%d or fewer %s, support for the unbid suits.", TakeoutShortMax, theirSuit.Symbol()),
		}, true
	case !call.IsContract() || !suitContract:
		return Explanation{}, false
	case call == oneNT:
		return Explanation{Meaning: "Balanced overcall with a stopper.", PointRange: hcp(OneNTOvercall), ImpliedShape: "Balanced."}, true
	case call == twoNT:
		return Explanation{Meaning: "Strong balanced overcall with a stopper.", PointRange: fmt.Sprintf("%d+ HCP", TwoNTOvercallMin), ImpliedShape: "Balanced."}, true
	}
	suit, isSuit := call.Denom.Suit()
	if !isSuit || suit == theirSuit {
		return Explanation{}, false
	}
	level, ok := cheapestLevel(l, call.Denom)
	switch {
	case ok && call.Level == level:
		return Explanation{
			Meaning:      fmt.Sprintf("Natural overcall in %s.", suit.Symbol()),
			Convention:   "Overcall",
			PointRange:   hcp(SuitOvercall),
			ImpliedShape: fmt.Sprintf("Good 5+ %s.", suit.Symbol()),
		}, true
	case ok && call.Level == level+1:
		return Explanation{
			Meaning:      fmt.Sprintf("Weak jump overcall in %s.", suit.Symbol()),
			Convention:   "Weak Jump Overcall",
			PointRange:   hcp(JumpOvercall),
			ImpliedShape: fmt.Sprintf("%d+ %s.", WeakTwoLength, suit.Symbol()),
		}, true
	}
	return Explanation{}, false
}

func hcp(r convention.Range) string {
	return r.String() + " HCP"
}

func raiseShape(s game.Suit) string {
	if s.IsMajor() {
		return "3+ card support."
	}
	return "4+ card support."
}

func quantitativeRange(partner game.Call) string {
	switch partner {
	case oneNT:
		return fmt.Sprintf("%d+ HCP", NTQuantitativeMin)
	case twoNT:
		return fmt.Sprintf("%d+ HCP", TwoNTQuantitative)
	}
	return "Slam interest."
}

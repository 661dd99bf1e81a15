package advisor

import (
	"bidding-coach/internal/convention"
	"bidding-coach/internal/game"
	"bidding-coach/internal/ledger"
)

// slamSuggestions layers slam tries on a response, weakest first, based on
// partner's minimum plus our own points.
func slamSuggestions(h game.Hand, l *ledger.Ledger, seat game.Seat) []Suggestion {
	partner := convention.PartnerRange(l, seat)
	combined := convention.Range{Min: partner.Min + h.Points(), Max: partner.Max + h.Points()}
	nt := convention.NoTrumpContextExists(l)
	fit, hasFit := convention.TrumpSuitAgreed(l)

	// With an agreed major 4NT is the trump ace-ask, never quantitative.
	var out []Suggestion
	if nt && !hasFit && combined.Min >= SlamInviteMin {
		out = append(out, suggest(game.Bid(4, game.NoTrump), combined,
			"Quantitative: invites 6NT with combined %s.", combined))
	}
	if combined.Min >= SmallSlamMin {
		switch {
		case hasFit:
			out = append(out, suggest(game.Bid(4, game.NoTrump), combined,
				"Key Card Blackwood: slam try in %s with combined %s.", fit.Symbol(), combined))
		case nt:
			out = append(out, suggest(game.Bid(4, game.DenomClubs), combined,
				"Gerber: asks for aces with combined %s.", combined))
		}
	}
	if nt && combined.Min >= GrandSlamMin {
		out = append(out, suggest(game.Bid(7, game.NoTrump), combined,
			"Grand slam: combined %s.", combined))
	}
	return out
}

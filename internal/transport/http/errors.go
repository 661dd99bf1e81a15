package httptransport

import (
	"errors"
	"net/http"

	apppublic "bidding-coach/internal/app/public"
	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/game"

	"github.com/rs/zerolog/log"
)

// MapDomainError turns a service error into an HTTP status and error code.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrMalformedHand):
		return http.StatusBadRequest, "malformed_hand"
	case errors.Is(err, game.ErrIllegalCall):
		return http.StatusConflict, "illegal_call"
	case errors.Is(err, game.ErrInvalidCall),
		errors.Is(err, game.ErrInvalidSeat),
		errors.Is(err, apppublic.ErrInvalidRequest),
		errors.Is(err, appsession.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, appsession.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, appsession.ErrNotYourTurn):
		return http.StatusConflict, "not_your_turn"
	case errors.Is(err, apppublic.ErrAuctionFinished), errors.Is(err, appsession.ErrAuctionFinished):
		return http.StatusConflict, "auction_finished"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, code := MapDomainError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	WriteHTTPError(w, status, code)
}

package game

import (
	"errors"
	"fmt"
)

var ErrMalformedHand = errors.New("malformed_hand")
var ErrIllegalCall = errors.New("illegal_call")
var ErrInvalidCall = errors.New("invalid_call")
var ErrInvalidSeat = errors.New("invalid_seat")

// MalformedHandError reports hand text that cannot describe 13 distinct cards.
type MalformedHandError struct {
	Reason string
}

func (e *MalformedHandError) Error() string {
	return "malformed hand: " + e.Reason
}

func (e *MalformedHandError) Is(target error) bool {
	return target == ErrMalformedHand
}

func malformedHand(format string, args ...any) error {
	return &MalformedHandError{Reason: fmt.Sprintf(format, args...)}
}

// IllegalCallError reports a call the auction cannot accept at this point.
type IllegalCallError struct {
	Call   Call
	Seat   Seat
	Reason string
}

func (e *IllegalCallError) Error() string {
	return fmt.Sprintf("illegal call %s by %s: %s", e.Call, e.Seat, e.Reason)
}

func (e *IllegalCallError) Is(target error) bool {
	return target == ErrIllegalCall
}

package game

import "strings"

type Seat int

// Seats in bidding rotation order.
const (
	North Seat = iota
	East
	South
	West
)

var AllSeats = [4]Seat{North, East, South, West}

func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

func (s Seat) Name() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

func (s Seat) Valid() bool {
	return s >= North && s <= West
}

// Next returns the seat n places further round the table.
func (s Seat) Next(n int) Seat {
	return Seat(((int(s)+n)%4 + 4) % 4)
}

func (s Seat) Partner() Seat {
	return s.Next(2)
}

// SameSide reports whether both seats belong to one partnership.
func (s Seat) SameSide(o Seat) bool {
	return int(s)%2 == int(o)%2
}

func ParseSeat(raw string) (Seat, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	default:
		return 0, ErrInvalidSeat
	}
}

type AuctionState string

const (
	AuctionNotStarted AuctionState = "not_started"
	AuctionInProgress AuctionState = "in_progress"
	AuctionFinished   AuctionState = "finished"
)

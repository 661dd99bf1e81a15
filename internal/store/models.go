package store

import "time"

// Snapshot is everything needed to resume a bidding session.
type Snapshot struct {
	ID        string
	Seat      string
	Dealer    string
	Hand      []string
	Calls     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Snapshot) clone() Snapshot {
	s.Hand = append([]string{}, s.Hand...)
	s.Calls = append([]string{}, s.Calls...)
	return s
}

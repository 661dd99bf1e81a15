package store

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ulidEntropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	ulidEntropyMu sync.Mutex
)

// NewID returns a time-ordered ULID for a new session.
func NewID() string {
	ulidEntropyMu.Lock()
	defer ulidEntropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulidEntropy).String()
}

// ValidID reports whether id is a well-formed ULID, so lookups for garbage
// ids can skip the database.
func ValidID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}

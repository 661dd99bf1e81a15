package store

import (
	"context"
	"errors"
	"fmt"

	"bidding-coach/internal/config"
)

var ErrNotFound = errors.New("not found")

// SessionStore persists session snapshots. SaveSession inserts or replaces
// by ID.
type SessionStore interface {
	SaveSession(ctx context.Context, snap Snapshot) error
	GetSession(ctx context.Context, id string) (*Snapshot, error)
	DeleteSession(ctx context.Context, id string) error
	ListSessions(ctx context.Context, limit, offset int) ([]Snapshot, error)
	Ping(ctx context.Context) error
	Close()
}

// Open builds the store selected by cfg.Mode.
func Open(ctx context.Context, cfg config.StoreConfig) (SessionStore, error) {
	switch cfg.Mode {
	case config.StorePostgres:
		st, err := New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := st.EnsureSchema(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return st, nil
	case config.StoreSQLite:
		return NewSQLite(cfg.SQLitePath)
	case "", config.StoreMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported store mode %q", cfg.Mode)
	}
}

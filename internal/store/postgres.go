package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS bidding_sessions (
  id TEXT PRIMARY KEY,
  seat TEXT NOT NULL,
  dealer TEXT NOT NULL,
  hand TEXT[] NOT NULL,
  calls TEXT[] NOT NULL DEFAULT '{}',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS bidding_sessions_updated_at_idx ON bidding_sessions (updated_at DESC);
`

// Store is the PostgreSQL session store.
type Store struct {
	Pool *pgxpool.Pool
}

func New(dsn string) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Pool.Ping(ctx)
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.Pool.Exec(ctx, postgresSchema)
	return err
}

func (s *Store) SaveSession(ctx context.Context, snap Snapshot) error {
	snap = snap.clone()
	_, err := s.Pool.Exec(ctx, `
INSERT INTO bidding_sessions (id, seat, dealer, hand, calls, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  seat = EXCLUDED.seat,
  dealer = EXCLUDED.dealer,
  hand = EXCLUDED.hand,
  calls = EXCLUDED.calls,
  updated_at = EXCLUDED.updated_at`,
		snap.ID, snap.Seat, snap.Dealer, snap.Hand, snap.Calls, snap.CreatedAt, snap.UpdatedAt)
	return err
}

func (s *Store) GetSession(ctx context.Context, id string) (*Snapshot, error) {
	row := s.Pool.QueryRow(ctx, `
SELECT id, seat, dealer, hand, calls, created_at, updated_at
FROM bidding_sessions WHERE id = $1`, id)
	var snap Snapshot
	if err := row.Scan(&snap.ID, &snap.Seat, &snap.Dealer, &snap.Hand, &snap.Calls, &snap.CreatedAt, &snap.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &snap, nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	tag, err := s.Pool.Exec(ctx, `DELETE FROM bidding_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListSessions(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	rows, err := s.Pool.Query(ctx, `
SELECT id, seat, dealer, hand, calls, created_at, updated_at
FROM bidding_sessions ORDER BY updated_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Snapshot{}
	for rows.Next() {
		var snap Snapshot
		if err := rows.Scan(&snap.ID, &snap.Seat, &snap.Dealer, &snap.Hand, &snap.Calls, &snap.CreatedAt, &snap.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

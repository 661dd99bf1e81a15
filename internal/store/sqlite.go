package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS bidding_sessions (
  id TEXT PRIMARY KEY,
  seat TEXT NOT NULL,
  dealer TEXT NOT NULL,
  hand TEXT NOT NULL,
  calls TEXT NOT NULL DEFAULT '',
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS bidding_sessions_updated_at_idx ON bidding_sessions (updated_at DESC);
`

// SQLiteStore keeps sessions in a local SQLite file. Card and call lists are
// stored space separated; timestamps as unix milliseconds.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, pragma := range []string{`PRAGMA busy_timeout = 5000;`, `PRAGMA journal_mode = WAL;`} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() {
	if s == nil || s.db == nil {
		return
	}
	_ = s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) SaveSession(ctx context.Context, snap Snapshot) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO bidding_sessions (id, seat, dealer, hand, calls, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  seat = excluded.seat,
  dealer = excluded.dealer,
  hand = excluded.hand,
  calls = excluded.calls,
  updated_at = excluded.updated_at`,
		snap.ID, snap.Seat, snap.Dealer,
		strings.Join(snap.Hand, " "), strings.Join(snap.Calls, " "),
		snap.CreatedAt.UnixMilli(), snap.UpdatedAt.UnixMilli())
	return err
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, seat, dealer, hand, calls, created_at, updated_at
FROM bidding_sessions WHERE id = ?`, id)
	snap, err := scanSQLite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM bidding_sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ListSessions(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, seat, dealer, hand, calls, created_at, updated_at
FROM bidding_sessions ORDER BY updated_at DESC, id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Snapshot{}
	for rows.Next() {
		snap, err := scanSQLite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLite(r rowScanner) (Snapshot, error) {
	var (
		snap             Snapshot
		hand, calls      string
		created, updated int64
	)
	if err := r.Scan(&snap.ID, &snap.Seat, &snap.Dealer, &hand, &calls, &created, &updated); err != nil {
		return Snapshot{}, err
	}
	snap.Hand = strings.Fields(hand)
	snap.Calls = strings.Fields(calls)
	snap.CreatedAt = time.UnixMilli(created).UTC()
	snap.UpdatedAt = time.UnixMilli(updated).UTC()
	return snap, nil
}

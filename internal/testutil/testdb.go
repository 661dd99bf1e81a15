// Package testutil opens throwaway Postgres stores for tests. Each store lives
// in its own schema, migrated from migrations/*.up.sql and dropped on cleanup.
// Tests skip when TEST_POSTGRES_DSN is unset.
package testutil

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"bidding-coach/internal/config"
	"bidding-coach/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func OpenTestStore(t *testing.T) (*store.Store, func()) {
	t.Helper()
	cfg, err := config.LoadTest()
	if err != nil {
		t.Skipf("skip test db: %v", err)
	}
	ctx := context.Background()
	dsn := cfg.TestPostgresDSN
	schema := pgx.Identifier{fmt.Sprintf("bidding_test_%d", time.Now().UnixNano())}

	if err := execOnce(ctx, dsn, "CREATE SCHEMA "+schema.Sanitize()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	st, err := store.New(withSearchPath(dsn, schema[0]))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := migrateUp(ctx, st); err != nil {
		st.Close()
		t.Fatalf("migrate: %v", err)
	}
	return st, func() {
		st.Close()
		_ = execOnce(ctx, dsn, "DROP SCHEMA "+schema.Sanitize()+" CASCADE")
	}
}

func execOnce(ctx context.Context, dsn, sql string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()
	_, err = pool.Exec(ctx, sql)
	return err
}

func migrateUp(ctx context.Context, st *store.Store) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := st.Pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the working directory to the module's
// migrations folder.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		p := filepath.Join(dir, "migrations")
		if fi, err := os.Stat(p); err == nil && fi.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found")
		}
		dir = parent
	}
}

func withSearchPath(dsn, schema string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "search_path=" + url.QueryEscape(schema)
}

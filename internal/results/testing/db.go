// Package resultstesting opens throwaway result stores for tests.
package resultstesting

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"scentsurvey/internal/results"
	"scentsurvey/internal/testutil"
)

const defaultTimeout = 2 * time.Second

// Open opens a DuckDB connection and verifies it responds within a short timeout.
func Open(t testing.TB, dsn string) *sql.DB {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	conn, err := sql.Open("duckdb", dsn)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		t.Fatalf("ping duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}

// Store returns an in-memory result store with the schema applied.
func Store(t testing.TB) *results.Store {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	store, err := results.New(ctx, Open(t, ""), nil)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

package testutil

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ladder/internal/db"
	"github.com/alexanderramin/ladder/internal/domain"
)

// NewTestDB opens a migrated in-memory tracker database that is closed with
// the test.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// CountRecords returns how many rows of kind the records table holds.
func CountRecords(t testing.TB, conn db.DBTX, kind domain.Kind) int {
	t.Helper()
	var n int
	err := conn.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM records WHERE kind = ?`, string(kind)).Scan(&n)
	require.NoError(t, err)
	return n
}

// NextSequenceID returns the next id stored for kind, or 0 when the kind has
// no sequence row yet.
func NextSequenceID(t testing.TB, conn db.DBTX, kind domain.Kind) int {
	t.Helper()
	var next int
	err := conn.QueryRowContext(context.Background(),
		`SELECT next_id FROM record_sequences WHERE kind = ?`, string(kind)).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0
	}
	require.NoError(t, err)
	return next
}

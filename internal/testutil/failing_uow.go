package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/alexanderramin/ladder/internal/db"
)

// FailWritesUoW runs callbacks in a real transaction but fails every write
// aimed at Table with Err. Reads and writes to other tables go through, so a
// test can break one step of a multi-table write and check what survived.
type FailWritesUoW struct {
	DB    *sql.DB
	Table string
	Err   error
}

func (u *FailWritesUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	target := regexp.MustCompile(`(?i)\b(INTO|UPDATE|DELETE\s+FROM)\s+` + regexp.QuoteMeta(u.Table) + `\b`)
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, table: u.Table, target: target, err: u.Err})
	})
}

type failingWrites struct {
	db.DBTX
	table  string
	target *regexp.Regexp
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.target.MatchString(query) {
		return nil, fmt.Errorf("write to %s: %w", f.table, f.err)
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

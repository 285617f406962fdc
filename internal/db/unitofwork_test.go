package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ladder/internal/db"
	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/testutil"
)

// storeCourse writes a sequence row and a course row, the two writes an Add
// makes.
func storeCourse(ctx context.Context, tx db.DBTX, id int) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO record_sequences (kind, next_id) VALUES ('course', ?)
		 ON CONFLICT(kind) DO UPDATE SET next_id = excluded.next_id`, id+1); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO records (kind, id, position, body, created_at, updated_at)
		 VALUES ('course', ?, ?, '{}', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`, id, id)
	return err
}

func TestWithinTx_CommitsBothTables(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return storeCourse(ctx, tx, 1)
	})
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CountRecords(t, database, domain.KindCourse))
	assert.Equal(t, 2, testutil.NextSequenceID(t, database, domain.KindCourse))
}

func TestWithinTx_ErrorRollsBackBothTables(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)
	invalid := errors.New("invalid body")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := storeCourse(ctx, tx, 1); err != nil {
			return err
		}
		return invalid
	})
	require.ErrorIs(t, err, invalid)
	assert.Equal(t, "invalid body", err.Error())

	assert.Zero(t, testutil.CountRecords(t, database, domain.KindCourse))
	assert.Zero(t, testutil.NextSequenceID(t, database, domain.KindCourse))
}

func TestWithinTx_FailedRecordInsertKeepsSequence(t *testing.T) {
	database := testutil.NewTestDB(t)
	require.NoError(t, db.NewSQLiteUnitOfWork(database).WithinTx(context.Background(),
		func(ctx context.Context, tx db.DBTX) error { return storeCourse(ctx, tx, 1) }))

	full := errors.New("disk full")
	uow := &testutil.FailWritesUoW{DB: database, Table: "records", Err: full}
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return storeCourse(ctx, tx, 2)
	})
	require.ErrorIs(t, err, full)

	assert.Equal(t, 1, testutil.CountRecords(t, database, domain.KindCourse))
	assert.Equal(t, 2, testutil.NextSequenceID(t, database, domain.KindCourse))
}

func TestWithinTx_PanicRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = storeCourse(ctx, tx, 1)
			panic("boom")
		})
	})

	assert.Zero(t, testutil.CountRecords(t, database, domain.KindCourse))
}

func TestWithinTx_CommitFailureIsNotReportedAsRollback(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := storeCourse(ctx, tx, 1); err != nil {
			return err
		}
		// Ending the transaction early makes the commit fail.
		return tx.(*sql.Tx).Rollback()
	})
	require.ErrorIs(t, err, sql.ErrTxDone)
	assert.Contains(t, err.Error(), "committing transaction")
	assert.NotContains(t, err.Error(), "rollback failed")

	assert.Zero(t, testutil.CountRecords(t, database, domain.KindCourse))
}

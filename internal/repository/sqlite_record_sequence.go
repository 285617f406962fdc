package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ladder/internal/db"
	"github.com/alexanderramin/ladder/internal/domain"
)

// SQLiteRecordSequenceRepo allocates per-kind record ids using the
// record_sequences table. Ids only move forward, so a removed id is never
// handed out again.
type SQLiteRecordSequenceRepo struct {
	db db.DBTX
}

// NewSQLiteRecordSequenceRepo creates a new SQLiteRecordSequenceRepo.
func NewSQLiteRecordSequenceRepo(conn db.DBTX) *SQLiteRecordSequenceRepo {
	return &SQLiteRecordSequenceRepo{db: conn}
}

// Claim creates the sequence row for kind with next as its first value.
// It reports false when the kind already has a sequence.
func (r *SQLiteRecordSequenceRepo) Claim(ctx context.Context, kind domain.Kind, next int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO record_sequences (kind, next_id) VALUES (?, ?)`,
		string(kind), max(next, 1))
	if err != nil {
		return false, fmt.Errorf("claiming %s sequence: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claiming %s sequence: %w", kind, err)
	}
	return n == 1, nil
}

// NextID returns the next id for kind. A missing sequence row is seeded from
// the highest stored id of that kind.
func (r *SQLiteRecordSequenceRepo) NextID(ctx context.Context, kind domain.Kind) (int, error) {
	seedQuery := `INSERT OR IGNORE INTO record_sequences (kind, next_id)
		SELECT ?, COALESCE(MAX(id), 0) + 1 FROM records WHERE kind = ?`
	if _, err := r.db.ExecContext(ctx, seedQuery, string(kind), string(kind)); err != nil {
		return 0, fmt.Errorf("seeding %s sequence: %w", kind, err)
	}

	var next int
	allocQuery := `UPDATE record_sequences
		SET next_id = next_id + 1
		WHERE kind = ?
		RETURNING next_id - 1`
	if err := r.db.QueryRowContext(ctx, allocQuery, string(kind)).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next %s id: %w", kind, err)
	}
	return next, nil
}

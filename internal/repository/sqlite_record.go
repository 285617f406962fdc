package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ladder/internal/db"
	"github.com/alexanderramin/ladder/internal/domain"
)

// SQLiteRecordRepo implements RecordRepo for one record kind. Every kind
// shares the records table; rows are told apart by the kind column and
// listed in insertion order through the position column.
type SQLiteRecordRepo[T domain.Record[T]] struct {
	db   *sql.DB
	uow  db.UnitOfWork
	kind domain.Kind
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo[T domain.Record[T]](conn *sql.DB) *SQLiteRecordRepo[T] {
	return &SQLiteRecordRepo[T]{
		db:   conn,
		uow:  db.NewSQLiteUnitOfWork(conn),
		kind: kindOf[T](),
	}
}

// Seed stores records with their own ids the first time the kind is used.
// Once a kind has a sequence, Seed is a no-op, even if every record has
// since been removed.
func (r *SQLiteRecordRepo[T]) Seed(ctx context.Context, records []T) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		highest := 0
		for _, rec := range records {
			highest = max(highest, rec.RecordID())
		}
		claimed, err := NewSQLiteRecordSequenceRepo(tx).Claim(ctx, r.kind, highest+1)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}
		for _, rec := range records {
			if err := r.insert(ctx, tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRecordRepo[T]) Add(ctx context.Context, rec T) (T, error) {
	var stored T
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := NewSQLiteRecordSequenceRepo(tx).NextID(ctx, r.kind)
		if err != nil {
			return err
		}
		stored = rec.WithID(id)
		return r.insert(ctx, tx, stored)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return stored, nil
}

func (r *SQLiteRecordRepo[T]) insert(ctx context.Context, tx db.DBTX, rec T) error {
	body, err := encodeBody(rec)
	if err != nil {
		return err
	}
	now := nowUTC()
	query := `INSERT INTO records (kind, id, position, body, created_at, updated_at)
		SELECT ?, ?, COALESCE(MAX(position), 0) + 1, ?, ?, ?
		FROM records WHERE kind = ?`
	_, err = tx.ExecContext(ctx, query,
		string(r.kind), rec.RecordID(), body, now, now, string(r.kind))
	if err != nil {
		return fmt.Errorf("inserting %s %d: %w", r.kind, rec.RecordID(), err)
	}
	return nil
}

func (r *SQLiteRecordRepo[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	stored := rec.WithID(id)
	body, err := encodeBody(stored)
	if err != nil {
		var zero T
		return zero, err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE records SET body = ?, updated_at = ? WHERE kind = ? AND id = ?`,
		body, nowUTC(), string(r.kind), id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("updating %s %d: %w", r.kind, id, err)
	}
	if err := affectedOrNotFound(res, notFound[T](id)); err != nil {
		var zero T
		return zero, err
	}
	return stored, nil
}

func (r *SQLiteRecordRepo[T]) Modify(ctx context.Context, id int, change func(T) (T, error)) (T, error) {
	var stored T
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		// Touch the row before reading it so the transaction holds the write
		// lock for the whole read-modify-write.
		res, err := tx.ExecContext(ctx,
			`UPDATE records SET updated_at = ? WHERE kind = ? AND id = ?`,
			nowUTC(), string(r.kind), id)
		if err != nil {
			return fmt.Errorf("locking %s %d: %w", r.kind, id, err)
		}
		if err := affectedOrNotFound(res, notFound[T](id)); err != nil {
			return err
		}

		var body string
		err = tx.QueryRowContext(ctx,
			`SELECT body FROM records WHERE kind = ? AND id = ?`, string(r.kind), id).Scan(&body)
		if err != nil {
			return fmt.Errorf("reading %s %d: %w", r.kind, id, err)
		}
		current, err := r.decode(id, body)
		if err != nil {
			return err
		}

		next, err := change(current)
		if err != nil {
			return err
		}
		stored = next.WithID(id)
		encoded, err := encodeBody(stored)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE records SET body = ? WHERE kind = ? AND id = ?`,
			encoded, string(r.kind), id); err != nil {
			return fmt.Errorf("updating %s %d: %w", r.kind, id, err)
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return stored, nil
}

func (r *SQLiteRecordRepo[T]) Remove(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE kind = ? AND id = ?`, string(r.kind), id)
	if err != nil {
		return fmt.Errorf("removing %s %d: %w", r.kind, id, err)
	}
	return affectedOrNotFound(res, notFound[T](id))
}

func (r *SQLiteRecordRepo[T]) Get(ctx context.Context, id int) (T, error) {
	var body string
	err := r.db.QueryRowContext(ctx,
		`SELECT body FROM records WHERE kind = ? AND id = ?`, string(r.kind), id).Scan(&body)
	if err != nil {
		var zero T
		if isNoRows(err) {
			return zero, notFound[T](id)
		}
		return zero, fmt.Errorf("getting %s %d: %w", r.kind, id, err)
	}
	return r.decode(id, body)
}

func (r *SQLiteRecordRepo[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, body FROM records WHERE kind = ? ORDER BY position`, string(r.kind))
	if err != nil {
		return nil, fmt.Errorf("listing %s records: %w", r.kind, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var (
			id   int
			body string
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scanning %s record: %w", r.kind, err)
		}
		rec, err := r.decode(id, body)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// decode trusts the id column over any id embedded in the body.
func (r *SQLiteRecordRepo[T]) decode(id int, body string) (T, error) {
	rec, err := decodeBody[T](body)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", r.kind, id, err)
	}
	return rec.WithID(id), nil
}

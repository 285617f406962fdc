package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ladder/internal/db"
	"github.com/alexanderramin/ladder/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo on the single-row profile table.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

// Seed stores p unless a profile already exists.
func (r *SQLiteProfileRepo) Seed(ctx context.Context, p domain.Profile) error {
	body, err := encodeBody(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO profile (id, body, updated_at) VALUES (1, ?, ?)`, body, nowUTC())
	if err != nil {
		return fmt.Errorf("seeding profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (domain.Profile, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM profile WHERE id = 1`).Scan(&body)
	if err != nil {
		if isNoRows(err) {
			return domain.Profile{}, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return domain.Profile{}, fmt.Errorf("scanning profile: %w", err)
	}
	return decodeBody[domain.Profile](body)
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p domain.Profile) error {
	body, err := encodeBody(p)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO profile (id, body, updated_at) VALUES (1, ?, ?)`, body, nowUTC())
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

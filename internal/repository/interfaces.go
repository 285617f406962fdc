package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/ladder/internal/domain"
)

// ErrNotFound is returned when an id does not match any stored record.
var ErrNotFound = errors.New("not found")

// RecordRepo is the ordered store behind one list. Implementations keep
// insertion order as display order and assign ids on Add as one more than
// the highest id ever issued, so ids are never reused after a delete.
type RecordRepo[T domain.Record[T]] interface {
	// Add stores rec under a fresh id and returns the stored copy. Any id
	// already set on rec is ignored.
	Add(ctx context.Context, rec T) (T, error)
	// Update replaces the record with the given id. The stored copy keeps id
	// regardless of the id carried by rec.
	Update(ctx context.Context, id int, rec T) (T, error)
	// Modify reads the record with the given id, passes it to change and
	// stores the result, with no other write to that list in between. When
	// change returns an error nothing is written.
	Modify(ctx context.Context, id int, change func(T) (T, error)) (T, error)
	Remove(ctx context.Context, id int) error
	Get(ctx context.Context, id int) (T, error)
	List(ctx context.Context) ([]T, error)
}

// ProfileRepo stores the single general-information profile.
type ProfileRepo interface {
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
}

func kindOf[T domain.Record[T]]() domain.Kind {
	var zero T
	return zero.Kind()
}

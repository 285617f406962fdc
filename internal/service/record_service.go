package service

import (
	"context"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/alexanderramin/ladder/internal/editor"
	"github.com/alexanderramin/ladder/internal/repository"
)

// RecordService is the use-case layer over one record list. Writes are
// validated here; the repository stores whatever it is given.
type RecordService[T domain.Record[T]] struct {
	repo     repository.RecordRepo[T]
	blank    func() T
	observer UseCaseObserver
}

// NewRecordService wires a list. blank returns a record holding the form
// defaults for new entries.
func NewRecordService[T domain.Record[T]](
	repo repository.RecordRepo[T],
	blank func() T,
	observers ...UseCaseObserver,
) *RecordService[T] {
	return &RecordService[T]{
		repo:     repo,
		blank:    blank,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *RecordService[T]) Kind() domain.Kind {
	return s.blank().Kind()
}

// Blank returns a new record with the form defaults.
func (s *RecordService[T]) Blank() T {
	return s.blank()
}

// NewSession returns a closed editor session committing through s.
func (s *RecordService[T]) NewSession() *editor.Session[T] {
	return editor.NewSession[T](s, s.blank)
}

func (s *RecordService[T]) Add(ctx context.Context, rec T) (saved T, err error) {
	fields := map[string]any{"kind": string(s.Kind())}
	defer observe(ctx, s.observer, "add-record", fields)(&err)

	if err = rec.Validate(); err != nil {
		return saved, err
	}
	saved, err = s.repo.Add(ctx, rec)
	if err != nil {
		return saved, err
	}
	fields["id"] = saved.RecordID()
	return saved, nil
}

func (s *RecordService[T]) Update(ctx context.Context, id int, rec T) (saved T, err error) {
	fields := map[string]any{"kind": string(s.Kind()), "id": id}
	defer observe(ctx, s.observer, "update-record", fields)(&err)

	if err = rec.Validate(); err != nil {
		return saved, err
	}
	return s.repo.Update(ctx, id, rec)
}

// Modify applies change to the stored record with id as a single step, so a
// concurrent write cannot land between the read and the write. The changed
// record is validated before it is stored.
func (s *RecordService[T]) Modify(ctx context.Context, id int, change func(T) T) (saved T, err error) {
	fields := map[string]any{"kind": string(s.Kind()), "id": id}
	defer observe(ctx, s.observer, "update-record", fields)(&err)

	return s.repo.Modify(ctx, id, func(current T) (T, error) {
		next := change(current)
		return next, next.Validate()
	})
}

func (s *RecordService[T]) Remove(ctx context.Context, id int) (err error) {
	fields := map[string]any{"kind": string(s.Kind()), "id": id}
	defer observe(ctx, s.observer, "remove-record", fields)(&err)

	return s.repo.Remove(ctx, id)
}

func (s *RecordService[T]) Get(ctx context.Context, id int) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

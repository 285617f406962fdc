// Package editor holds the add/edit form state machine shared by every list.
//
// A Session is Closed, Creating a new record, or Editing an existing one.
// Forms mutate a draft copy; the store only sees the draft on Submit.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/ladder/internal/domain"
)

var (
	// ErrSessionOpen is returned when New or Edit is called while a draft is
	// already open.
	ErrSessionOpen = errors.New("editor session already open")
	// ErrSessionClosed is returned by operations that need an open draft.
	ErrSessionClosed = errors.New("editor session closed")
)

// State is the mode of a Session.
type State int

const (
	Closed State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Store is the slice of the record store a session commits through.
type Store[T domain.Record[T]] interface {
	Add(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int, rec T) (T, error)
	Get(ctx context.Context, id int) (T, error)
}

// Session is not safe for concurrent use. Each form owns its own session.
type Session[T domain.Record[T]] struct {
	store Store[T]
	blank func() T

	state State
	id    int
	draft T
}

// NewSession creates a closed session. blank supplies the schema defaults
// for new drafts.
func NewSession[T domain.Record[T]](store Store[T], blank func() T) *Session[T] {
	return &Session[T]{store: store, blank: blank}
}

func (s *Session[T]) State() State { return s.state }

// EditingID returns the id under edit. ok is false unless the session is
// Editing.
func (s *Session[T]) EditingID() (id int, ok bool) {
	if s.state != Editing {
		return 0, false
	}
	return s.id, true
}

// New opens a draft holding the schema defaults.
func (s *Session[T]) New() error {
	if s.state != Closed {
		return ErrSessionOpen
	}
	s.draft = s.blank()
	s.state = Creating
	return nil
}

// Edit opens a draft copied from the stored record with the given id. The
// session stays Closed when the record cannot be loaded.
func (s *Session[T]) Edit(ctx context.Context, id int) error {
	if s.state != Closed {
		return ErrSessionOpen
	}
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("opening editor: %w", err)
	}
	s.draft = rec
	s.id = id
	s.state = Editing
	return nil
}

// Draft returns a copy of the current draft, or the zero value when Closed.
func (s *Session[T]) Draft() T {
	return s.draft
}

// Change applies fn to the draft.
func (s *Session[T]) Change(fn func(draft *T)) error {
	if s.state == Closed {
		return ErrSessionClosed
	}
	fn(&s.draft)
	return nil
}

// Cancel discards the draft without touching the store.
func (s *Session[T]) Cancel() error {
	if s.state == Closed {
		return ErrSessionClosed
	}
	s.reset()
	return nil
}

// Submit validates the draft and commits it: Add when Creating, Update when
// Editing. On any error the session stays open with the draft intact.
func (s *Session[T]) Submit(ctx context.Context) (T, error) {
	var zero T
	if s.state == Closed {
		return zero, ErrSessionClosed
	}
	if err := s.draft.Validate(); err != nil {
		return zero, err
	}

	var (
		saved T
		err   error
	)
	switch s.state {
	case Creating:
		saved, err = s.store.Add(ctx, s.draft)
	case Editing:
		saved, err = s.store.Update(ctx, s.id, s.draft)
	}
	if err != nil {
		return zero, err
	}
	s.reset()
	return saved, nil
}

func (s *Session[T]) reset() {
	var zero T
	s.state = Closed
	s.id = 0
	s.draft = zero
}

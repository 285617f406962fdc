package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is wrapped by every field validation failure.
var ErrValidation = errors.New("invalid record")

// Record is the contract shared by every list entry type. T is the concrete
// value type, so stores can hand out copies without reflection.
type Record[T any] interface {
	Kind() Kind
	// RecordID returns the store-assigned id; 0 marks a new, unsaved record.
	RecordID() int
	// WithID returns a copy of the record carrying id.
	WithID(id int) T
	Validate() error
}

func fieldError(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, fmt.Sprintf(format, args...))
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(field, "is required")
	}
	return nil
}

// firstError returns the first non-nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func oneOf(field, value string, options []Option) error {
	for _, o := range options {
		if o.Value == value {
			return nil
		}
	}
	return fieldError(field, "has unknown value %q", value)
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrRequired              = errors.New("field required")
	ErrEmpty                 = errors.New("must not be empty")
	ErrInvalidURI            = errors.New("not a valid absolute URI")
	ErrInvalidEmail          = errors.New("not a valid email address")
	ErrNegative              = errors.New("must not be negative")
	ErrInvalidTimestamp      = errors.New("not a recognizable date or time")
	ErrInvalidType           = errors.New("unexpected value type")
	ErrNotAllowed            = errors.New("not allowed for this kind of record")
	ErrDuplicateStandardName = errors.New("duplicate standard name")
)

// ValidationError describes why a single field of a record was rejected.
type ValidationError struct {
	Record string
	Field  string
	Value  any
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s.%s: %s", e.Record, e.Field, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s (got %v)", e.Record, e.Field, e.Err, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors holds the first failure of every rejected field, in field order.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("%d validation error(s): %s", len(ve), strings.Join(msgs, "; "))
}

func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, e := range ve {
		errs = append(errs, e)
	}
	return errs
}

// Field returns the failure recorded for a field, or nil.
func (ve ValidationErrors) Field(name string) *ValidationError {
	for _, e := range ve {
		if e.Field == name {
			return e
		}
	}
	return nil
}

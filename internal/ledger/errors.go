package ledger

import (
	"errors"
	"fmt"
)

// ErrNothingSelected is matched by every SelectionError.
var ErrNothingSelected = errors.New("nothing selected")

// ValidationError reports a rejected form field. The book is left unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// SelectionError reports a delete issued with no row selected.
type SelectionError struct {
	Target string // "budget" or "detail line"
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("select a %s to delete first", e.Target)
}

// Is makes errors.Is(err, ErrNothingSelected) true for any SelectionError.
func (e *SelectionError) Is(target error) bool {
	return target == ErrNothingSelected
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsSelection reports whether err is, or wraps, a SelectionError.
func IsSelection(err error) bool {
	return errors.Is(err, ErrNothingSelected)
}

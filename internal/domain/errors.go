package domain

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected by a recording service.
var ErrValidation = errors.New("validation failed")

// ErrNotFound marks a record that does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

// Validationf returns an error wrapping ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// DataAccessError reports a failed read from one of the metric sources.
type DataAccessError struct {
	Source string
	Err    error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

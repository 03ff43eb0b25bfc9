package family

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the kind shared by every construction failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports which field was rejected and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidArgument).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

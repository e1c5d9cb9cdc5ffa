package validators

import (
	"errors"
	"strings"
)

// MsgInvalidJSON is reported when a request body cannot be decoded.
const MsgInvalidJSON = "Invalid JSON was passed"

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError carries the ordered list of violation messages produced
// for a single request.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// Is reports ErrValidation as the error kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

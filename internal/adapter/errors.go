package adapter

import (
	"errors"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx response of the server.
type APIError struct {
	StatusCode int
	// Messages holds the message of the envelope; validation failures carry
	// one entry per violation.
	Messages []string

	kind error
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *APIError) Unwrap() error {
	return e.kind
}

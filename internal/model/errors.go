package model

import "errors"

// Error taxonomy shared by handlers and store. Wrap with fmt.Errorf("...: %w", Err*)
// to attach detail; handlers map each sentinel to an HTTP status.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalid      = errors.New("invalid input")
	ErrConflict     = errors.New("already exists")
)

package store

import (
	"errors"
	"strings"
)

// ErrNoSession marks store operations that need an authenticated session.
var ErrNoSession = errors.New("no active session")

// ErrForbidden marks operations gated on the session's role.
var ErrForbidden = errors.New("forbidden: insufficient permissions")

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

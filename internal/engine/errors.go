package engine

import "errors"

var (
	// ErrValidation indicates an invalid request.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("not found")
)

package garden

import "errors"

// Failure kinds wrapped by every public operation, so callers can tell
// bad input apart from missing records and storage faults.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage failure")
)

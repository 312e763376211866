package figures

import "errors"

var (
	// ErrNotFound is returned when no artifact exists for an identifier.
	ErrNotFound = errors.New("figure not found")
	// ErrInvalidID is returned by ParseID for malformed identifiers.
	ErrInvalidID = errors.New("invalid figure id")
)

package stats

import "errors"

var (
	// ErrFitFailed wraps any failure of a configured pairing.
	ErrFitFailed = errors.New("statistics fit failed")
	// ErrInvalidPairing is returned for pairings that cannot be run.
	ErrInvalidPairing = errors.New("invalid pairing")
)

package analysis

import (
	"errors"
	"fmt"
)

// ErrInputContract marks records that cannot be fitted: missing fields,
// non-numeric values, too few rows or an empty prediction range.
var ErrInputContract = errors.New("input contract violated")

// InputError describes an input-contract violation. Row is -1 when the
// problem is not tied to a single record.
type InputError struct {
	Field  string
	Row    int
	Reason string
}

func (e *InputError) Error() string {
	switch {
	case e.Field != "" && e.Row >= 0:
		return fmt.Sprintf("%s: record %d field %q: %s", ErrInputContract, e.Row, e.Field, e.Reason)
	case e.Field != "":
		return fmt.Sprintf("%s: field %q: %s", ErrInputContract, e.Field, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", ErrInputContract, e.Reason)
	}
}

func (e *InputError) Unwrap() error {
	return ErrInputContract
}

func inputErr(field string, row int, reason string) error {
	return &InputError{Field: field, Row: row, Reason: reason}
}

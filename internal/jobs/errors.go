package jobs

import "errors"

var (
	ErrNotFound     = errors.New("job not found")
	ErrInvalidInput = errors.New("invalid job")
)

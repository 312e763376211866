package applications

import "errors"

var (
	ErrInvalidInput = errors.New("invalid application")
	ErrJobNotFound  = errors.New("job not found")
)

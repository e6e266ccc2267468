package quiz

import "errors"

var (
	// ErrInvalidInput is returned when the question set or an argument is malformed.
	ErrInvalidInput = errors.New("invalid quiz input")
	// ErrInvalidState is returned when an operation is called outside its phase.
	ErrInvalidState = errors.New("invalid quiz state")
)

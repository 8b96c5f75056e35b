package pattern

import "errors"

var (
	// ErrInvalidPattern is returned when a regular expression fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownMatcher is returned when a named matcher is not registered.
	ErrUnknownMatcher = errors.New("unknown matcher")
)

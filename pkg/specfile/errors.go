package specfile

import (
	"errors"

	"github.com/dmitrymomot/paramparser/pkg/pattern"
	"github.com/dmitrymomot/paramparser/pkg/transform"
)

var (
	// ErrInvalidDocument is returned when a document is not a mapping with
	// "fields" and optional "defaults".
	ErrInvalidDocument = errors.New("invalid spec document")

	// ErrInvalidRule is returned for a rule entry that is not recognized.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnsupportedFormat is returned for file extensions other than
	// .yaml, .yml, .json and .toml.
	ErrUnsupportedFormat = errors.New("unsupported spec format")

	// ErrDuplicateSpec is returned when two files in a directory share a name.
	ErrDuplicateSpec = errors.New("duplicate spec name")

	ErrUnknownTransform = transform.ErrUnknownTransform
	ErrUnknownMatcher   = pattern.ErrUnknownMatcher
	ErrInvalidPattern   = pattern.ErrInvalidPattern
)

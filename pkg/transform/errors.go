package transform

import "errors"

var (
	// ErrUnknownTransform is returned when a named transform is not registered.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnexpectedType is returned when a transform receives a value it cannot handle.
	ErrUnexpectedType = errors.New("unexpected value type")

	// ErrCoercion is returned when a value cannot be converted to the requested type.
	ErrCoercion = errors.New("cannot coerce value")
)

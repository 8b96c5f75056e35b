package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrUnknownSpec indicates a request for a spec that is not registered
	ErrUnknownSpec = errors.New("unknown spec")
)

// HTTPError is an error carrying the status code and machine readable key
// to respond with.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

var (
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrPayloadTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "payload_too_large"}
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
)

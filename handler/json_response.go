package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/pkg/binder"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information. Kind and Messages are set for
// rejected records; Details groups the messages by field path.
type ErrorDetail struct {
	Code     string              `json:"code,omitempty"`
	Message  string              `json:"message,omitempty"`
	Kind     string              `json:"kind,omitempty"`
	Messages []string            `json:"messages,omitempty"`
	Details  map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON creates a 200 response with v as data. Errors are rendered as JSONError.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}

	r := &jsonResponse{status: http.StatusOK}
	if body, ok := v.(JSONResponse); ok {
		r.body = body
	} else {
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates an error response whose status is derived from err.
func JSONError(err error, opts ...JSONOption) Response {
	info := classifyError(err)
	r := &jsonResponse{
		status: info.StatusCode,
		body:   JSONResponse{Error: info.Detail},
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// errorDetail renders err for clients. Unclassified errors expose no text.
func errorDetail(err error, status int) *ErrorDetail {
	if ve, ok := paramparser.AsValidateError(err); ok {
		detail := &ErrorDetail{
			Code:     "validation_error",
			Message:  "Validation failed",
			Kind:     string(ve.Kind),
			Messages: ve.Messages(),
		}
		for _, field := range ve.Errors.Fields() {
			if field == "" {
				continue
			}
			if detail.Details == nil {
				detail.Details = make(map[string][]string)
			}
			detail.Details[field] = ve.Errors.Get(field)
		}
		return detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	if isBindError(err) {
		return &ErrorDetail{Code: "bad_request", Message: err.Error()}
	}

	return &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(status),
	}
}

func isBindError(err error) bool {
	for _, target := range []error{
		binder.ErrFailedToParseJSON,
		binder.ErrInvalidForm,
		binder.ErrFailedToParseQuery,
		binder.ErrMissingContentType,
		binder.ErrUnsupportedMediaType,
		binder.ErrBodyTooLarge,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

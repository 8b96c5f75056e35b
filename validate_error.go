package paramparser

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrymomot/paramparser/pkg/validator"
)

// Kind classifies a ValidateError.
type Kind = validator.Kind

const (
	KindMissing         = validator.KindMissing
	KindIncorrectFormat = validator.KindIncorrectFormat
	KindOther           = validator.KindOther
)

// ErrValidation is matched by every ValidateError through errors.Is.
var ErrValidation = errors.New("validate:err")

// ValidateError is the only error Parse returns. It aggregates every failure
// found in the phase that stopped the record.
type ValidateError struct {
	// Code is always http.StatusBadRequest; transports can map it directly.
	Code int
	Kind Kind
	// Errors is never empty.
	Errors validator.ValidationErrors
	// Stack is captured outside production environments.
	Stack []byte
}

func newValidateError(kind Kind, errs validator.ValidationErrors) *ValidateError {
	if len(errs) == 0 {
		errs = validator.ValidationErrors{validator.Unexpected("", "Unknown error")}
	}
	if kind == "" {
		kind = errs.Kind()
	}
	return &ValidateError{
		Code:   http.StatusBadRequest,
		Kind:   kind,
		Errors: errs,
	}
}

// Error implements the error interface.
func (e *ValidateError) Error() string {
	return "validate:err: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the failure messages in the order they were found.
func (e *ValidateError) Messages() []string {
	return e.Errors.Messages()
}

// Unwrap exposes ErrValidation and the underlying validator.ValidationErrors.
func (e *ValidateError) Unwrap() []error {
	return []error{ErrValidation, e.Errors}
}

// AsValidateError extracts a ValidateError from err.
func AsValidateError(err error) (*ValidateError, bool) {
	var ve *ValidateError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func IsValidateError(err error) bool {
	_, ok := AsValidateError(err)
	return ok
}

// IsKind reports whether err is a ValidateError of the given kind.
func IsKind(err error, kind Kind) bool {
	ve, ok := AsValidateError(err)
	return ok && ve.Kind == kind
}

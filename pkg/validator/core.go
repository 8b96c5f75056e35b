package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	// KindMissing marks a required field or declared dependency that is absent.
	KindMissing Kind = "MISSING"
	// KindIncorrectFormat marks a value rejected by a pattern, array or nested rule.
	KindIncorrectFormat Kind = "INCORRECT_FORMAT"
	// KindOther marks misconfigured rules and unexpected failures.
	KindOther Kind = "OTHER"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	Kind              Kind
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	return "validation failed: " + strings.Join(ve.Messages(), "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Merge appends every error of other, prefixing its field with prefix.
// Messages are kept as produced so nested failures read the same as top-level ones.
func (ve *ValidationErrors) Merge(prefix string, other ValidationErrors) {
	for _, err := range other {
		if prefix != "" {
			if err.Field == "" {
				err.Field = prefix
			} else {
				err.Field = fmt.Sprintf("%s.%s", prefix, err.Field)
			}
		}
		*ve = append(*ve, err)
	}
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errors []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errors = append(errors, err)
		}
	}
	return errors
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages returns every message in insertion order. Duplicates are kept.
func (ve ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Message)
	}
	return messages
}

// Kind reports the dominant kind of the collection: OTHER wins over everything,
// otherwise the first non-MISSING kind, otherwise MISSING.
// Errors without a kind count as OTHER.
func (ve ValidationErrors) Kind() Kind {
	dominant := Kind("")
	for _, err := range ve {
		kind := err.Kind
		if kind == "" {
			kind = KindOther
		}
		switch {
		case kind == KindOther:
			return KindOther
		case dominant == "" || dominant == KindMissing:
			dominant = kind
		}
	}
	if dominant == "" {
		return KindOther
	}
	return dominant
}

// Is matches the sentinels of this package against the collected failures:
// ErrValidationFailed matches any collection, the others match when at least
// one failure of their sort is present.
func (ve ValidationErrors) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrFieldRequired:
		return ve.contains(func(e ValidationError) bool { return e.Kind == KindMissing })
	case ErrInvalidFormat:
		return ve.contains(func(e ValidationError) bool { return e.Kind == KindIncorrectFormat })
	case ErrInvalidLength:
		return ve.contains(func(e ValidationError) bool { return e.TranslationKey == "validation.exact_length" })
	case ErrMisconfiguredRule:
		return ve.contains(func(e ValidationError) bool { return e.TranslationKey == "validation.invalid_regex" })
	}
	return false
}

func (ve ValidationErrors) contains(fn func(ValidationError) bool) bool {
	for _, err := range ve {
		if fn(err) {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

func (ve ValidationErrors) GetTranslatableErrors() []ValidationError {
	return ve
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
// Every rule is evaluated; failures are aggregated rather than short-circuited.
func Apply(rules ...Rule) error {
	if errs := Collect(rules...); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// Collect evaluates rules like Apply but returns the raw collection,
// which is convenient when several phases feed the same aggregate.
func Collect(rules ...Rule) ValidationErrors {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

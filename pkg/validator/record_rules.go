package validator

import "fmt"

// Required fails when a field is absent. Empty strings, zero and false are present values.
func Required(field string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s is required", field),
			Kind:           KindMissing,
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredBy fails when a field declared as a dependency of owner is absent.
// The message names the dependent field, not the owner.
func RequiredBy(field, owner string, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s is required", field),
			Kind:           KindMissing,
			TranslationKey: "validation.required_by",
			TranslationValues: map[string]any{
				"field": field,
				"owner": owner,
			},
		},
	}
}

// Format fails when a value does not satisfy its field's format rule.
func Format(field string, valid bool) Rule {
	return Rule{
		Check: func() bool {
			return valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Invalid %s format", field),
			Kind:           KindIncorrectFormat,
			TranslationKey: "validation.format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ExactLength fails when a sequence does not hold exactly want items.
func ExactLength(field string, got, want int) Rule {
	return Rule{
		Check: func() bool {
			return got == want
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Invalid %s length, expected %d items", field, want),
			Kind:           KindIncorrectFormat,
			TranslationKey: "validation.exact_length",
			TranslationValues: map[string]any{
				"field":  field,
				"length": want,
				"actual": got,
			},
		},
	}
}

// Misconfigured reports a rule that cannot be evaluated, e.g. a pattern that
// failed to compile. It is a configuration failure, not a data failure.
func Misconfigured(field string, pattern any) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        fmt.Sprintf("invalid regex (%v)", pattern),
		Kind:           KindOther,
		TranslationKey: "validation.invalid_regex",
		TranslationValues: map[string]any{
			"field":   field,
			"pattern": pattern,
		},
	}
}

// Unexpected wraps an arbitrary failure message as an OTHER error.
func Unexpected(field, message string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        message,
		Kind:           KindOther,
		TranslationKey: "validation.unexpected",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

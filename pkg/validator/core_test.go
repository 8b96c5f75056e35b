package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
		assert.Equal(t, "validation failed: email is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "email is required"})
		errs.Add(validator.ValidationError{Field: "lang", Message: "Invalid lang format"})

		assert.Equal(t, "validation failed: email is required; Invalid lang format", errs.Error())
	})
}

func TestValidationErrors_Merge(t *testing.T) {
	t.Run("prefixes nested fields", func(t *testing.T) {
		var nested validator.ValidationErrors
		nested.Add(validator.ValidationError{Field: "name", Message: "name is required", Kind: validator.KindMissing})

		var errs validator.ValidationErrors
		errs.Merge("users[1]", nested)

		require.Len(t, errs, 1)
		assert.Equal(t, "users[1].name", errs[0].Field)
		assert.Equal(t, "name is required", errs[0].Message)
		assert.Equal(t, validator.KindMissing, errs[0].Kind)
	})

	t.Run("uses prefix for fieldless errors", func(t *testing.T) {
		var nested validator.ValidationErrors
		nested.Add(validator.ValidationError{Message: "boom"})

		var errs validator.ValidationErrors
		errs.Merge("users[0]", nested)

		assert.True(t, errs.Has("users[0]"))
	})

	t.Run("keeps fields without prefix", func(t *testing.T) {
		var nested validator.ValidationErrors
		nested.Add(validator.ValidationError{Field: "a", Message: "a is required"})

		var errs validator.ValidationErrors
		errs.Merge("", nested)

		assert.True(t, errs.Has("a"))
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "email", Message: "email is required"})
	errs.Add(validator.ValidationError{Field: "email", Message: "Invalid email format"})
	errs.Add(validator.ValidationError{Field: "password", Message: "password is required"})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"email is required", "Invalid email format"}, errs.Get("email"))
		assert.Empty(t, errs.Get("name"))
	})

	t.Run("get errors", func(t *testing.T) {
		assert.Len(t, errs.GetErrors("email"), 2)
		assert.Empty(t, errs.GetErrors("name"))
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"email", "password"}, errs.Fields())
	})

	t.Run("messages keep duplicates and order", func(t *testing.T) {
		dup := append(validator.ValidationErrors{}, errs...)
		dup.Add(validator.ValidationError{Field: "password", Message: "password is required"})
		assert.Equal(t, []string{
			"email is required",
			"Invalid email format",
			"password is required",
			"password is required",
		}, dup.Messages())
	})

	t.Run("is empty", func(t *testing.T) {
		var empty validator.ValidationErrors
		assert.True(t, empty.IsEmpty())
		assert.False(t, errs.IsEmpty())
	})

	t.Run("translatable errors", func(t *testing.T) {
		assert.Len(t, errs.GetTranslatableErrors(), 3)
	})
}

func TestValidationErrors_Kind(t *testing.T) {
	tests := []struct {
		name     string
		kinds    []validator.Kind
		expected validator.Kind
	}{
		{"only missing", []validator.Kind{validator.KindMissing, validator.KindMissing}, validator.KindMissing},
		{"format after missing", []validator.Kind{validator.KindMissing, validator.KindIncorrectFormat}, validator.KindIncorrectFormat},
		{"first non missing wins", []validator.Kind{validator.KindIncorrectFormat, validator.KindMissing}, validator.KindIncorrectFormat},
		{"other dominates", []validator.Kind{validator.KindIncorrectFormat, validator.KindOther, validator.KindMissing}, validator.KindOther},
		{"untagged counts as other", []validator.Kind{validator.KindMissing, ""}, validator.KindOther},
		{"empty collection", nil, validator.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errs validator.ValidationErrors
			for i, kind := range tt.kinds {
				errs.Add(validator.ValidationError{Field: fmt.Sprint(i), Kind: kind})
			}
			assert.Equal(t, tt.expected, errs.Kind())
		})
	}
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", true),
			validator.Format("email", true),
		)
		assert.NoError(t, err)
	})

	t.Run("aggregates every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("email", false),
			validator.Required("password", true),
			validator.Format("lang", false),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.True(t, errs.Has("email"))
		assert.True(t, errs.Has("lang"))
		assert.False(t, errs.Has("password"))
	})

	t.Run("returns nil for no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestCollect(t *testing.T) {
	errs := validator.Collect(
		validator.Required("a", false),
		validator.Required("b", false),
	)
	assert.Equal(t, []string{"a is required", "b is required"}, errs.Messages())
	assert.Empty(t, validator.Collect(validator.Required("a", true)))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts from wrapped error", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "email", Message: "email is required"}}
		wrapped := fmt.Errorf("handler: %w", errs)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("email"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestValidationErrors_Is(t *testing.T) {
	t.Parallel()

	errs := validator.Collect(
		validator.Required("a", false),
		validator.ExactLength("b", 1, 2),
	)

	assert.ErrorIs(t, errs, validator.ErrValidationFailed)
	assert.ErrorIs(t, errs, validator.ErrFieldRequired)
	assert.ErrorIs(t, errs, validator.ErrInvalidFormat)
	assert.ErrorIs(t, errs, validator.ErrInvalidLength)
	assert.NotErrorIs(t, errs, validator.ErrMisconfiguredRule)

	wrapped := fmt.Errorf("parse: %w", validator.ValidationErrors{validator.Misconfigured("c", "([")})
	assert.ErrorIs(t, wrapped, validator.ErrMisconfiguredRule)
	assert.NotErrorIs(t, wrapped, validator.ErrFieldRequired)
}

package transform

import "fmt"

// Func maps a field value to its transformed form.
// Returning an error aborts the record with an OTHER failure.
type Func = func(value any) (any, error)

// String lifts a string function into a Func. Values that are not strings
// are returned unchanged, so the result is safe on numbers, booleans and records.
func String(fn func(string) string) Func {
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return value, nil
		}
		return fn(s), nil
	}
}

// Method adapts a receiver-style function, such as a method expression
// (time.Time.UTC), into a Func. The value must be of type T.
func Method[T any, R any](fn func(T) R) Func {
	return func(value any) (any, error) {
		recv, ok := value.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("%w: got %T, want %T", ErrUnexpectedType, value, zero)
		}
		return fn(recv), nil
	}
}

// Apply runs transforms over value in order, stopping at the first error.
func Apply(value any, transforms ...Func) (any, error) {
	result := value

	for _, transform := range transforms {
		var err error
		if result, err = transform(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Compose creates a reusable pipeline that can be stored in a rule list.
func Compose(transforms ...Func) Func {
	return func(value any) (any, error) {
		return Apply(value, transforms...)
	}
}

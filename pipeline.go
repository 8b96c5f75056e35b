package paramparser

import (
	"fmt"

	"github.com/dmitrymomot/paramparser/pkg/transform"
)

// transformError carries a transformation failure with the field it came from.
type transformError struct {
	field string
	err   error
}

func (e *transformError) Error() string { return e.err.Error() }

func (e *transformError) Unwrap() error { return e.err }

// transforms builds the call-scoped pipeline of a field: its Transform tokens
// in order, plus a trailing trim unless NoTrim is present. The field itself
// is never modified.
func (f Field) transforms() []TransformFunc {
	fns := make([]TransformFunc, 0, len(f)+1)
	for _, t := range f {
		if t.kind == TokenTransform && t.fn != nil {
			fns = append(fns, t.fn)
		}
	}
	if !f.Has(TokenNoTrim) {
		fns = append(fns, transform.Trim)
	}
	return fns
}

// transformRecord applies each field's pipeline in place on the working record.
func transformRecord(record Record, spec Spec, names []string) error {
	for _, name := range names {
		value, ok := record[name]
		if !ok || value == nil {
			continue
		}

		for _, fn := range spec[name].transforms() {
			var err error
			if value, err = applyTransform(fn, value); err != nil {
				return &transformError{field: name, err: err}
			}
		}
		record[name] = value
	}
	return nil
}

// applyTransform maps sequences element-wise into a new slice of the same
// length; null elements stay null. Scalars and records are passed directly.
func applyTransform(fn TransformFunc, value any) (any, error) {
	items, ok := asSequence(value)
	if !ok {
		return fn(value)
	}

	out := make([]any, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		v, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

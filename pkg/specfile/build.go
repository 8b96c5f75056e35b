package specfile

import (
	"fmt"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/pkg/pattern"
	"github.com/dmitrymomot/paramparser/pkg/transform"
)

// Spec resolves the document into a rule table and its defaults. Regular
// expressions are compiled and matcher and transform names are looked up
// here, so a returned spec never fails for configuration reasons.
func (d *Document) Spec() (paramparser.Spec, paramparser.Record, error) {
	spec := make(paramparser.Spec, len(d.Fields))
	for _, f := range d.Fields {
		field := make(paramparser.Field, 0, len(f.Rules))
		for _, rule := range f.Rules {
			tokens, err := rule.tokens()
			if err != nil {
				return nil, nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			field = append(field, tokens...)
		}
		spec[f.Name] = field
	}

	var defaults paramparser.Record
	if d.Defaults != nil {
		defaults = make(paramparser.Record, len(d.Defaults))
		for k, v := range d.Defaults {
			defaults[k] = v
		}
	}
	return spec, defaults, nil
}

func (r Rule) tokens() ([]paramparser.Token, error) {
	switch {
	case r.Required:
		return []paramparser.Token{paramparser.Required()}, nil
	case r.NoTrim:
		return []paramparser.Token{paramparser.NoTrim()}, nil
	case r.Pattern != "" || r.Match != "":
		m, err := matcher(r.Pattern, r.Match)
		if err != nil {
			return nil, err
		}
		return []paramparser.Token{paramparser.Pattern(m)}, nil
	case len(r.Depends) > 0:
		return []paramparser.Token{paramparser.Depends(r.Depends...)}, nil
	case r.Items != nil:
		m, err := matcher(r.Items.Pattern, r.Items.Match)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		if r.Items.HasLength {
			return []paramparser.Token{paramparser.ArrayItems(m, r.Items.Length)}, nil
		}
		return []paramparser.Token{paramparser.ArrayItems(m)}, nil
	case r.Records != nil:
		spec, defaults, err := r.Records.Spec()
		if err != nil {
			return nil, fmt.Errorf("records: %w", err)
		}
		return []paramparser.Token{paramparser.NestedRecords(spec, defaults)}, nil
	case len(r.Transforms) > 0:
		tokens := make([]paramparser.Token, 0, len(r.Transforms))
		for _, name := range r.Transforms {
			fn, err := transform.Lookup(name)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, paramparser.Transform(fn))
		}
		return tokens, nil
	}
	return nil, ErrInvalidRule
}

func matcher(expr, name string) (pattern.Matcher, error) {
	if name != "" {
		return pattern.Lookup(name)
	}
	m := pattern.Compile(expr)
	if err := pattern.Check(m); err != nil {
		return nil, err
	}
	return m, nil
}

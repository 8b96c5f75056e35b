package specfile

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Document is a declarative rule table.
type Document struct {
	Fields   []FieldRules
	Defaults map[string]any
}

// FieldRules holds the rules of one field in document order.
type FieldRules struct {
	Name  string
	Rules []Rule
}

// Rule is a single entry of a field's rule list. Exactly one member is set.
type Rule struct {
	Required   bool
	NoTrim     bool
	Pattern    string
	Match      string
	Depends    []string
	Items      *ItemsRule
	Records    *Document
	Transforms []string
}

// ItemsRule constrains every element of a sequence.
type ItemsRule struct {
	Pattern string
	Match   string
	Length  int
	// HasLength reports whether Length was given; zero is a valid length.
	HasLength bool
}

// Field returns the rules of the named field.
func (d *Document) Field(name string) (FieldRules, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldRules{}, false
}

// documentFromMap builds a document from a generic decoded mapping. Field
// order follows sorted names; callers that know the source order pass it.
func documentFromMap(m map[string]any, order []string) (*Document, error) {
	for key := range m {
		if key != "fields" && key != "defaults" {
			return nil, fmt.Errorf("%w: unexpected key %q", ErrInvalidDocument, key)
		}
	}

	doc := &Document{}

	if raw, ok := m["defaults"]; ok && raw != nil {
		defaults, ok := asMap(raw)
		if !ok {
			return nil, fmt.Errorf("%w: defaults must be a mapping", ErrInvalidDocument)
		}
		doc.Defaults = defaults
	}

	raw, ok := m["fields"]
	if !ok || raw == nil {
		return doc, nil
	}
	fields, ok := asMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: fields must be a mapping", ErrInvalidDocument)
	}
	if order == nil {
		order = slices.Sorted(maps.Keys(fields))
	}

	for _, name := range order {
		rules, err := rulesFromValue(fields[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		doc.Fields = append(doc.Fields, FieldRules{Name: name, Rules: rules})
	}
	return doc, nil
}

func rulesFromValue(v any) ([]Rule, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		// a single rule may be written without the list
		list = []any{v}
	}

	rules := make([]Rule, 0, len(list))
	for _, item := range list {
		rule, err := ruleFromValue(item)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func ruleFromValue(v any) (Rule, error) {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "required":
			return Rule{Required: true}, nil
		case "notrim":
			return Rule{NoTrim: true}, nil
		}
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}

	m, ok := asMap(v)
	if !ok || len(m) != 1 {
		return Rule{}, fmt.Errorf("%w: expected a name or a single-key mapping, got %v", ErrInvalidRule, v)
	}

	for key, arg := range m {
		switch key {
		case "pattern":
			s, err := asString(key, arg)
			return Rule{Pattern: s}, err
		case "match":
			s, err := asString(key, arg)
			return Rule{Match: s}, err
		case "depends":
			names, err := asStrings(key, arg)
			return Rule{Depends: names}, err
		case "transform":
			names, err := asStrings(key, arg)
			return Rule{Transforms: names}, err
		case "items":
			items, err := itemsFromValue(arg)
			return Rule{Items: items}, err
		case "records":
			sub, ok := asMap(arg)
			if !ok {
				return Rule{}, fmt.Errorf("%w: records must be a mapping", ErrInvalidRule)
			}
			doc, err := documentFromMap(sub, nil)
			if err != nil {
				return Rule{}, fmt.Errorf("records: %w", err)
			}
			return Rule{Records: doc}, nil
		default:
			return Rule{}, fmt.Errorf("%w: unknown rule %q", ErrInvalidRule, key)
		}
	}
	return Rule{}, ErrInvalidRule
}

func itemsFromValue(v any) (*ItemsRule, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, fmt.Errorf("%w: items must be a mapping", ErrInvalidRule)
	}

	items := &ItemsRule{}
	for key, arg := range m {
		var err error
		switch key {
		case "pattern":
			items.Pattern, err = asString("items.pattern", arg)
		case "match":
			items.Match, err = asString("items.match", arg)
		case "length":
			items.Length, err = asInt("items.length", arg)
			items.HasLength = true
		default:
			err = fmt.Errorf("%w: unknown items key %q", ErrInvalidRule, key)
		}
		if err != nil {
			return nil, err
		}
	}

	if (items.Pattern == "") == (items.Match == "") {
		return nil, fmt.Errorf("%w: items needs exactly one of pattern or match", ErrInvalidRule)
	}
	return items, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}

func asString(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: %s expects a non-empty string", ErrInvalidRule, key)
	}
	return s, nil
}

func asStrings(key string, v any) ([]string, error) {
	if s, ok := v.(string); ok && s != "" {
		return []string{s}, nil
	}
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: %s expects a name or a list of names", ErrInvalidRule, key)
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, err := asString(key, item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func asInt(key string, v any) (int, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int64:
		n = x
	case uint64:
		n = int64(x)
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("%w: %s expects an integer", ErrInvalidRule, key)
		}
		n = int64(x)
	default:
		return 0, fmt.Errorf("%w: %s expects an integer", ErrInvalidRule, key)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrInvalidRule, key)
	}
	return int(n), nil
}

package paramparser

import (
	"fmt"

	"github.com/dmitrymomot/paramparser/pkg/pattern"
	"github.com/dmitrymomot/paramparser/pkg/validator"
)

// parseFunc validates and transforms one record. Nested rules receive it
// explicitly instead of reaching back into the package.
type parseFunc func(record Record, spec Spec, defaults Record) (Record, error)

// checkFormats evaluates every field's format rule against the filtered,
// defaulted record. Nested rules replace their field value on success.
func checkFormats(record Record, spec Spec, names []string, parse parseFunc) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for _, name := range names {
		value, ok := record[name]
		if !ok || blank(value) {
			continue
		}

		rule, ok := spec[name].formatRule()
		if !ok {
			// Any present, non-empty value is acceptable.
			continue
		}

		switch rule.kind {
		case TokenNestedRecords:
			parsed, nestedErrs := checkNested(name, value, rule, parse)
			if len(nestedErrs) > 0 {
				errs = append(errs, nestedErrs...)
				continue
			}
			record[name] = parsed
		case TokenArrayItems:
			errs = append(errs, checkItems(name, value, rule)...)
		case TokenPattern:
			errs = append(errs, checkPattern(name, value, rule.matcher)...)
		}
	}

	return errs
}

func checkPattern(name string, value any, m pattern.Matcher) validator.ValidationErrors {
	if err := pattern.Check(m); err != nil {
		return validator.ValidationErrors{validator.Misconfigured(name, pattern.Describe(m))}
	}
	return validator.Collect(validator.Format(name, matches(m, value)))
}

func checkItems(name string, value any, rule Token) validator.ValidationErrors {
	if err := pattern.Check(rule.matcher); err != nil {
		return validator.ValidationErrors{validator.Misconfigured(name, pattern.Describe(rule.matcher))}
	}

	items, ok := asSequence(value)
	if !ok {
		return validator.Collect(validator.Format(name, false))
	}

	if length, ok := rule.Length(); ok && len(items) != length {
		return validator.Collect(validator.ExactLength(name, len(items), length))
	}

	for _, item := range items {
		if blank(item) {
			continue
		}
		if !matches(rule.matcher, item) {
			return validator.Collect(validator.Format(name, false))
		}
	}

	return nil
}

// checkNested parses every element against the nested spec. Failures of all
// elements are collected, each prefixed with the element path.
func checkNested(name string, value any, rule Token, parse parseFunc) ([]any, validator.ValidationErrors) {
	if rule.spec == nil {
		return nil, validator.ValidationErrors{validator.Unexpected(name, "invalid specs")}
	}

	items, ok := asSequence(value)
	if !ok {
		return nil, validator.Collect(validator.Format(name, false))
	}

	var errs validator.ValidationErrors
	parsed := make([]any, len(items))

	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", name, i)

		record, ok := asRecord(item)
		if !ok {
			errs = append(errs, validator.Format(path, false).Error)
			continue
		}

		result, err := parse(record, rule.spec, rule.defaults)
		if err != nil {
			errs.Merge(path, failures(err))
			continue
		}
		parsed[i] = result
	}

	return parsed, errs
}

func matches(m pattern.Matcher, value any) bool {
	s, ok := text(value)
	if !ok {
		return false
	}
	return m.MatchString(s)
}

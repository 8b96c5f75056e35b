package paramparser

import "github.com/dmitrymomot/paramparser/pkg/validator"

// checkPresence runs the required and dependency checks over every field and
// returns the union of their failures.
func checkPresence(record Record, spec Spec, names []string) validator.ValidationErrors {
	var rules []validator.Rule

	for _, name := range names {
		if spec[name].Has(TokenRequired) {
			rules = append(rules, validator.Required(name, present(record, name)))
		}
	}

	for _, name := range names {
		if !present(record, name) {
			continue
		}
		for _, t := range spec[name] {
			if t.kind != TokenDepends {
				continue
			}
			for _, dep := range t.fields {
				rules = append(rules, validator.RequiredBy(dep, name, present(record, dep)))
			}
		}
	}

	return validator.Collect(rules...)
}

// filterKeys copies the record keeping only declared fields. Null values are kept.
func filterKeys(record Record, spec Spec) Record {
	out := make(Record, len(spec))
	for name, value := range record {
		if _, ok := spec[name]; ok {
			out[name] = value
		}
	}
	return out
}

// assignDefaults fills declared fields that are still undefined. A null
// value is defined and keeps its null.
func assignDefaults(record Record, names []string, defaults Record) {
	if defaults == nil {
		return
	}
	for _, name := range names {
		if _, ok := record[name]; ok {
			continue
		}
		if value, ok := defaults[name]; ok {
			record[name] = value
		}
	}
}

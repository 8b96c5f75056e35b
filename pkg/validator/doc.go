// Package validator provides the failure vocabulary shared by every phase of
// record validation: kind-tagged ValidationError values, the ValidationErrors
// aggregate, and small Rule builders that pair a boolean Check with rich,
// translation-friendly error metadata.
//
// Rules are evaluated with Apply or Collect, which never stop at the first
// failure: every rule is checked and all failures are returned together. This
// is the aggregation half of the record engine's error model; the engine
// itself decides when a phase is complete and the aggregate must be raised.
//
// # Kinds
//
// Each ValidationError carries a Kind:
//   - KindMissing          – a required field or declared dependency is absent
//   - KindIncorrectFormat  – a pattern, array or nested rule rejected a value
//   - KindOther            – a misconfigured rule or an unexpected failure
//
// ValidationErrors.Kind reports the dominant kind of a collection, so a
// mixed aggregate collapses to a single classification for callers.
//
// # Usage
//
//	errs := validator.Collect(
//	    validator.Required("email", present),
//	    validator.Format("email", matches),
//	)
//	if !errs.IsEmpty() {
//	    log.Printf("%s: %v", errs.Kind(), errs.Messages())
//	}
//
// # Error Handling
//
// ValidationErrors implements error, so it can be returned directly and
// detected with errors.As or the ExtractValidationErrors helper. Individual
// field errors can be inspected with Has, Get, GetErrors and Fields.
//
// The package is stateless and goroutine-safe.
package validator

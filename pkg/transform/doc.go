// Package transform provides the value transformations applied to record
// fields after they pass validation.
//
// Every transformation has the single signature Func, func(any) (any, error).
// String functions are lifted with String, which leaves non-string values
// untouched; receiver-style functions such as method expressions are wrapped
// once with Method. There is no calling-convention probing at run time.
//
// The functions fall into a few groups:
//
//   - Strings – Trim, ToLower, ToUpper, Title, NFC, NormalizeWhitespace,
//     StripTags, case style conversion and MaxLength.
//   - Format – NormalizeEmail, NormalizePhone, NormalizeURL.
//   - Coercion – ToInt, ToFloat, ToBool turn textual input into typed values;
//     Clamp bounds numbers.
//   - Security – EscapeHTML and Bcrypt password hashing.
//
// Apply and Compose build pipelines:
//
//	clean := transform.Compose(
//	    transform.Trim,
//	    transform.NormalizeWhitespace,
//	    transform.ToLower,
//	)
//
//	v, err := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// A name registry (Register, Lookup, Names) exposes transforms to
// declarative spec files.
//
// # Error handling
//
// String transforms never fail. Coercions return ErrCoercion and typed
// transforms return ErrUnexpectedType; callers running a record pipeline
// report such errors as OTHER failures.
//
// All helpers are stateless and safe for concurrent use.
package transform

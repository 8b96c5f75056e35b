// Package pattern provides the value matchers used by record format rules.
//
// A Matcher is anything with a MatchString method, so a compiled
// *regexp.Regexp can be used directly. The package adds:
//
//   - Compile, which turns a malformed expression into an Invalid matcher
//     instead of panicking, so the misconfiguration surfaces as a rule error
//     when the record is validated
//   - Check and Describe for reporting misconfigured matchers
//   - built-in matchers (Email, UUID, URL, Phone, Digits, Slug, ...)
//   - a name registry used by declarative spec files (Register, Lookup)
//
// # Usage
//
//	lang := pattern.Compile(`^(en|de|fr)$`)
//	lang.MatchString("en") // true
//
//	m, err := pattern.Lookup("uuid")
//
// Registered matchers must be safe for concurrent use.
package pattern

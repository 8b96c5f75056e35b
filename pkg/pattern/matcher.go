package pattern

import (
	"fmt"
	"regexp"
)

// Matcher reports whether a string value satisfies a format constraint.
// *regexp.Regexp implements it.
type Matcher interface {
	MatchString(s string) bool
}

// MatcherFunc adapts an ordinary function to Matcher.
type MatcherFunc func(s string) bool

func (f MatcherFunc) MatchString(s string) bool { return f(s) }

// Invalid is a Matcher that could not be built. It never matches and
// remembers its source so the misconfiguration can be reported when the
// rule is evaluated.
type Invalid struct {
	Source string
	Cause  error
}

func (i Invalid) MatchString(string) bool { return false }

func (i Invalid) String() string { return i.Source }

// Err returns the configuration error.
func (i Invalid) Err() error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidPattern, i.Source, i.Cause)
}

// Compile compiles expr into a Matcher. Unlike regexp.MustCompile it does not
// panic: an invalid expression yields an Invalid matcher.
func Compile(expr string) Matcher {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Invalid{Source: expr, Cause: err}
	}
	return re
}

// Check returns the configuration error of m, if any. A nil matcher is
// a configuration error too.
func Check(m Matcher) error {
	switch v := m.(type) {
	case nil:
		return fmt.Errorf("%w: nil matcher", ErrInvalidPattern)
	case Invalid:
		return v.Err()
	case *Invalid:
		if v == nil {
			return fmt.Errorf("%w: nil matcher", ErrInvalidPattern)
		}
		return v.Err()
	case *regexp.Regexp:
		if v == nil {
			return fmt.Errorf("%w: nil regexp", ErrInvalidPattern)
		}
	}
	return nil
}

// Describe renders m for configuration error messages.
func Describe(m Matcher) string {
	switch v := m.(type) {
	case nil:
		return "<nil>"
	case Invalid:
		return v.Source
	case *Invalid:
		if v == nil {
			return "<nil>"
		}
		return v.Source
	case *regexp.Regexp:
		if v == nil {
			return "<nil>"
		}
		return v.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%T", m)
}

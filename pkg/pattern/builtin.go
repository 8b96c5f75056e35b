package pattern

import (
	"fmt"
	"maps"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	digitsRegex       = regexp.MustCompile(`^[0-9]+$`)
	integerRegex      = regexp.MustCompile(`^[-+]?[0-9]+$`)
	numberRegex       = regexp.MustCompile(`^[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	boolRegex         = regexp.MustCompile(`^(?i:true|false|1|0)$`)
)

// Email matches addresses accepted by net/mail whose domain has at least one dot.
var Email Matcher = MatcherFunc(func(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
})

// UUID matches the canonical 36 character form.
var UUID Matcher = MatcherFunc(func(s string) bool {
	// Fast rejection before parsing.
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
})

// URL matches absolute URLs with a scheme and host.
var URL Matcher = MatcherFunc(func(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
})

// Phone matches E.164 style numbers, tolerating spaces and dashes.
var Phone Matcher = MatcherFunc(func(s string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
})

var (
	Alphanumeric Matcher = alphanumericRegex
	Alpha        Matcher = alphaRegex
	Digits       Matcher = digitsRegex
	Integer      Matcher = integerRegex
	Number       Matcher = numberRegex
	Slug         Matcher = slugRegex
	Bool         Matcher = boolRegex
)

// OneOf matches one of the given values exactly.
func OneOf(values ...string) Matcher {
	allowed := slices.Clone(values)
	return MatcherFunc(func(s string) bool {
		return slices.Contains(allowed, s)
	})
}

var registry = struct {
	sync.RWMutex
	m map[string]Matcher
}{
	m: map[string]Matcher{
		"email":        Email,
		"uuid":         UUID,
		"url":          URL,
		"phone":        Phone,
		"alphanumeric": Alphanumeric,
		"alpha":        Alpha,
		"digits":       Digits,
		"integer":      Integer,
		"number":       Number,
		"slug":         Slug,
		"bool":         Bool,
	},
}

// Register makes a matcher available by name to declarative spec files.
// Registering an existing name replaces it.
func Register(name string, m Matcher) {
	if name == "" || m == nil {
		panic("pattern: Register requires a name and a matcher")
	}
	registry.Lock()
	defer registry.Unlock()
	registry.m[name] = m
}

// Lookup returns the matcher registered under name.
func Lookup(name string) (Matcher, error) {
	registry.RLock()
	defer registry.RUnlock()
	m, ok := registry.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, name)
	}
	return m, nil
}

// Names lists registered matcher names in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	return slices.Sorted(maps.Keys(registry.m))
}

package transform

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	dotRegex        = regexp.MustCompile(`\.{2,}`)
	nonDigitRegex   = regexp.MustCompile(`[^\d+]`)
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
)

// Trim removes leading and trailing whitespace. It is the implicit last step
// of every field unless the field opts out.
var Trim = String(strings.TrimSpace)

var (
	ToLower = String(strings.ToLower)
	ToUpper = String(strings.ToUpper)
)

// Title converts to title case using Unicode word boundaries.
var Title = String(func(s string) string {
	return cases.Title(language.Und).String(s)
})

// NFC normalises to Unicode composed form so visually equal input compares equal.
var NFC = String(norm.NFC.String)

// NormalizeWhitespace collapses runs of whitespace to a single space and trims.
var NormalizeWhitespace = String(func(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
})

// StripTags removes HTML tags.
var StripTags = String(func(s string) string {
	return tagRegex.ReplaceAllString(s, "")
})

// ToKebabCase replaces non-alphanumeric runs with a single hyphen.
var ToKebabCase = String(func(s string) string {
	return joinWords(s, '-')
})

// ToSnakeCase replaces non-alphanumeric runs with a single underscore.
var ToSnakeCase = String(func(s string) string {
	return joinWords(s, '_')
})

// ToCamelCase starts a new capitalised word at every non-alphanumeric rune.
var ToCamelCase = String(func(s string) string {
	var b strings.Builder
	newWord := false
	first := true
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			switch {
			case first:
				b.WriteRune(unicode.ToLower(r))
				first = false
			case newWord:
				b.WriteRune(unicode.ToUpper(r))
			default:
				b.WriteRune(unicode.ToLower(r))
			}
			newWord = false
			continue
		}
		if !first {
			newWord = true
		}
	}
	return b.String()
})

// MaxLength truncates strings longer than n runes.
func MaxLength(n int) Func {
	return String(func(s string) string {
		if n <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n])
	})
}

func joinWords(s string, sep rune) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

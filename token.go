package paramparser

import (
	"fmt"

	"github.com/dmitrymomot/paramparser/pkg/pattern"
)

// Record is an untyped field name to value mapping. A missing key is
// undefined; a key holding nil is null. Both count as absent.
type Record = map[string]any

// TransformFunc maps a field value to its transformed form.
type TransformFunc = func(value any) (any, error)

// TokenKind tags the variant held by a Token.
type TokenKind uint8

const (
	TokenRequired TokenKind = iota + 1
	TokenNoTrim
	TokenPattern
	TokenDepends
	TokenArrayItems
	TokenNestedRecords
	TokenTransform
)

func (k TokenKind) String() string {
	switch k {
	case TokenRequired:
		return "required"
	case TokenNoTrim:
		return "notrim"
	case TokenPattern:
		return "pattern"
	case TokenDepends:
		return "depends"
	case TokenArrayItems:
		return "items"
	case TokenNestedRecords:
		return "records"
	case TokenTransform:
		return "transform"
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// Token is one entry of a Field. Build tokens with the constructors below;
// the zero Token is not a valid rule and is ignored by the engine.
type Token struct {
	kind     TokenKind
	matcher  pattern.Matcher
	fields   []string
	length   int
	spec     Spec
	defaults Record
	fn       TransformFunc
}

// Required marks the field as mandatory: nil or missing values are rejected.
func Required() Token { return Token{kind: TokenRequired} }

// NoTrim suppresses the implicit trailing trim step.
func NoTrim() Token { return Token{kind: TokenNoTrim} }

// Pattern constrains a scalar value to m.
func Pattern(m pattern.Matcher) Token { return Token{kind: TokenPattern, matcher: m} }

// Regexp constrains a scalar value to the regular expression expr. An invalid
// expression is reported as a configuration failure when the rule runs.
func Regexp(expr string) Token { return Pattern(pattern.Compile(expr)) }

// Depends lists fields that must be present whenever this field is present.
func Depends(fields ...string) Token {
	return Token{kind: TokenDepends, fields: append([]string(nil), fields...)}
}

// ArrayItems requires a sequence value whose non-empty elements all match m.
// An optional length demands exactly that many elements.
func ArrayItems(m pattern.Matcher, length ...int) Token {
	t := Token{kind: TokenArrayItems, matcher: m, length: -1}
	if len(length) > 0 && length[0] >= 0 {
		t.length = length[0]
	}
	return t
}

// RegexpItems is ArrayItems with a regular expression.
func RegexpItems(expr string, length ...int) Token {
	return ArrayItems(pattern.Compile(expr), length...)
}

// NestedRecords requires a sequence of records, each parsed against spec with
// defaults. The field value is replaced by the parsed records.
func NestedRecords(spec Spec, defaults Record) Token {
	return Token{kind: TokenNestedRecords, spec: spec, defaults: defaults}
}

// Transform appends fn to the field's transformation pipeline.
func Transform(fn TransformFunc) Token { return Token{kind: TokenTransform, fn: fn} }

func (t Token) Kind() TokenKind { return t.kind }

// Matcher returns the matcher of a Pattern or ArrayItems token.
func (t Token) Matcher() pattern.Matcher { return t.matcher }

// Fields returns the dependent field names of a Depends token.
func (t Token) Fields() []string { return append([]string(nil), t.fields...) }

// Length returns the exact length of an ArrayItems token, if constrained.
func (t Token) Length() (int, bool) {
	if t.kind != TokenArrayItems || t.length < 0 {
		return 0, false
	}
	return t.length, true
}

// Nested returns the sub-spec and defaults of a NestedRecords token.
func (t Token) Nested() (Spec, Record) { return t.spec, t.defaults }

// Func returns the function of a Transform token.
func (t Token) Func() TransformFunc { return t.fn }

// Field is the ordered rule list of one field.
type Field []Token

// Has reports whether the field carries a token of the given kind.
func (f Field) Has(kind TokenKind) bool {
	_, ok := f.first(kind)
	return ok
}

func (f Field) first(kind TokenKind) (Token, bool) {
	for _, t := range f {
		if t.kind == kind {
			return t, true
		}
	}
	return Token{}, false
}

// formatRule resolves the field's single format rule: nested records first,
// then array items, then a plain pattern.
func (f Field) formatRule() (Token, bool) {
	for _, kind := range []TokenKind{TokenNestedRecords, TokenArrayItems, TokenPattern} {
		if t, ok := f.first(kind); ok {
			return t, true
		}
	}
	return Token{}, false
}

// Spec maps field names to their rules. It also defines the accepted field set.
type Spec map[string]Field

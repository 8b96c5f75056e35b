package transform

import (
	"fmt"
	"html"

	"golang.org/x/crypto/bcrypt"
)

// EscapeHTML escapes HTML special characters.
var EscapeHTML = String(html.EscapeString)

// Bcrypt replaces a string value with its bcrypt hash. A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost. Fields hashed this way
// usually carry NoTrim so passwords are hashed verbatim.
func Bcrypt(cost int) Func {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return func(value any) (any, error) {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want string", ErrUnexpectedType, value)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s), cost)
		if err != nil {
			return nil, fmt.Errorf("hash value: %w", err)
		}
		return string(hash), nil
	}
}

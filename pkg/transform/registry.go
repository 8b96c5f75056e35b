package transform

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var registry = struct {
	sync.RWMutex
	m map[string]Func
}{
	m: map[string]Func{
		"trim":        Trim,
		"lower":       ToLower,
		"upper":       ToUpper,
		"title":       Title,
		"nfc":         NFC,
		"whitespace":  NormalizeWhitespace,
		"strip_tags":  StripTags,
		"kebab":       ToKebabCase,
		"snake":       ToSnakeCase,
		"camel":       ToCamelCase,
		"email":       NormalizeEmail,
		"phone":       NormalizePhone,
		"url":         NormalizeURL,
		"int":         ToInt,
		"float":       ToFloat,
		"truncate":    Truncate,
		"bool":        ToBool,
		"escape_html": EscapeHTML,
		"bcrypt":      Bcrypt(bcrypt.DefaultCost),
	},
}

// Register makes a transform available by name to declarative spec files.
// Registering an existing name replaces it.
func Register(name string, fn Func) {
	if name == "" || fn == nil {
		panic("transform: Register requires a name and a function")
	}
	registry.Lock()
	defer registry.Unlock()
	registry.m[name] = fn
}

// Lookup returns the transform registered under name.
func Lookup(name string) (Func, error) {
	registry.RLock()
	defer registry.RUnlock()
	fn, ok := registry.m[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
	return fn, nil
}

// Names lists registered transform names in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	return slices.Sorted(maps.Keys(registry.m))
}

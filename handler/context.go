package handler

import (
	"context"

	"github.com/dmitrymomot/paramparser"
)

// ContextKey provides type-safe context keys to prevent key collisions.
type ContextKey struct{ name string }

func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a new context key.
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

var (
	recordKey = NewContextKey("paramparser.record")
	specKey   = NewContextKey("paramparser.spec")
)

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK is ContextValue that also reports whether the value was found.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}

// WithRecord stores a validated record in ctx.
func WithRecord(ctx context.Context, record paramparser.Record) context.Context {
	return context.WithValue(ctx, recordKey, record)
}

// RecordFromContext returns the record stored by Validate.
func RecordFromContext(ctx context.Context) (paramparser.Record, bool) {
	return ContextValueOK[paramparser.Record](ctx, recordKey)
}

// WithSpecName stores the name of the spec serving the request.
func WithSpecName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, specKey, name)
}

// SpecNameFromContext returns the name stored by WithSpecName, or "".
func SpecNameFromContext(ctx context.Context) string {
	return ContextValue[string](ctx, specKey)
}

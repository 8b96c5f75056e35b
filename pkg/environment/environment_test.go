package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := map[string]environment.Environment{
		"production":  environment.Production,
		"prod":        environment.Production,
		" PROD ":      environment.Production,
		"staging":     environment.Staging,
		"stage":       environment.Staging,
		"development": environment.Development,
		"dev":         environment.Development,
		"":            environment.Development,
		"qa":          environment.Development,
	}
	for input, expected := range tests {
		assert.Equal(t, expected, environment.Parse(input), input)
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.True(t, environment.Environment("prod").IsProduction())
	assert.False(t, environment.Staging.IsProduction())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("stores and reads environment", func(t *testing.T) {
		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
		assert.True(t, environment.IsProduction(ctx))
		assert.False(t, environment.IsDevelopment(ctx))
		assert.False(t, environment.IsStaging(ctx))
	})

	t.Run("empty context", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, environment.Environment(""), environment.FromContext(ctx))
		assert.False(t, environment.IsProduction(ctx))
		assert.False(t, environment.IsDevelopment(ctx))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	environment.Middleware(environment.Staging)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, environment.Staging, got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	attr, ok := extract(environment.WithContext(context.Background(), environment.Production))
	require.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "production", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/pkg/config"
	"github.com/dmitrymomot/paramparser/pkg/logger"
	"github.com/dmitrymomot/paramparser/pkg/specfile"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	t.Run("prints cleaned record", func(t *testing.T) {
		out, err := execute(t, "", "validate", "--spec", "testdata/signup.yaml", "--input", "testdata/input/valid.json")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, map[string]any{
			"email": "ann@example.com", "password": "pw", "age": float64(42), "lang": "en",
		}, got)
	})

	t.Run("reads stdin", func(t *testing.T) {
		out, err := execute(t, `{"email":"a@b.co","password":"pw"}`, "validate", "-s", "testdata/signup.yaml", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "email: a@b.co\n")
		assert.Contains(t, out, "lang: en\n")
	})

	t.Run("yaml numbers stay numbers", func(t *testing.T) {
		out, err := execute(t, `{"email":"a@b.co","password":"pw","age":"7"}`, "validate", "-s", "testdata/signup.yaml", "-o", "yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "age: 7\n")
	})

	t.Run("spew output", func(t *testing.T) {
		out, err := execute(t, `{"email":"a@b.co","password":"pw"}`, "validate", "-s", "testdata/signup.yaml", "-o", "spew")
		require.NoError(t, err)
		assert.Contains(t, out, `"email"`)
		assert.Contains(t, out, `"a@b.co"`)
	})

	t.Run("failure exits with status 1", func(t *testing.T) {
		out, err := execute(t, "", "validate", "--spec", "testdata/signup.yaml", "--input", "testdata/input/invalid.yaml")
		require.Error(t, err)

		var exitErr *exitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.code)
		assert.True(t, paramparser.IsKind(err, paramparser.KindMissing))

		var got report
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "MISSING", got.Kind)
		assert.Equal(t, []failure{
			{Field: "email", Message: "email is required"},
			{Field: "password", Message: "password is required"},
		}, got.Failures)
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := execute(t, `[1,2]`, "validate", "--spec", "testdata/signup.yaml")
		require.Error(t, err)
		var exitErr *exitError
		assert.False(t, paramparser.IsValidateError(err))
		assert.False(t, errors.As(err, &exitErr))
	})

	t.Run("bad output format", func(t *testing.T) {
		_, err := execute(t, `{}`, "validate", "--spec", "testdata/signup.yaml", "-o", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})

	t.Run("spec flag is required", func(t *testing.T) {
		_, err := execute(t, `{}`, "validate")
		assert.ErrorContains(t, err, "spec")
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "paramparser dev (commit: unknown)\n", out)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	log, err := newLogger(appConfig{Env: "production", LogLevel: "debug", LogFormat: "text"}, &buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "service=paramparser")

	_, err = newLogger(appConfig{LogLevel: "loud"}, &buf)
	assert.Error(t, err)
	_, err = newLogger(appConfig{LogFormat: "xml"}, &buf)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	registry, err := specfile.LoadDir("testdata")
	require.NoError(t, err)

	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	router := newRouter(log, appConfig{Env: "development"}, paramparser.New(), registry)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("validate accepts", func(t *testing.T) {
		rec := do(http.MethodPost, "/validate/signup", `{"email":"a@b.co","password":"pw"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"email":"a@b.co","password":"pw","lang":"en"}}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("validate rejects", func(t *testing.T) {
		rec := do(http.MethodPost, "/validate/signup", `{"email":"nope","password":"pw"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"kind":"INCORRECT_FORMAT"`)
		assert.Contains(t, rec.Body.String(), `"Invalid email format"`)
	})

	t.Run("unknown spec", func(t *testing.T) {
		rec := do(http.MethodPost, "/validate/orders", `{}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"unknown_spec"`)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := do(http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"not_found"`)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := do(http.MethodGet, "/validate/signup", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("health", func(t *testing.T) {
		rec := do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("specs", func(t *testing.T) {
		rec := do(http.MethodGet, "/specs", "")
		assert.JSONEq(t, `{"data":["signup"]}`, rec.Body.String())
	})
}

func TestRouter_NoSpecs(t *testing.T) {
	t.Parallel()

	registry, err := specfile.LoadDir(t.TempDir())
	require.NoError(t, err)

	router := newRouter(logger.Discard(), appConfig{}, paramparser.New(), registry)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

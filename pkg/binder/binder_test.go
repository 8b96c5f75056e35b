package binder_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramparser/pkg/binder"
)

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/validate/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON(0)

	t.Run("decodes object keeping numbers exact", func(t *testing.T) {
		t.Parallel()
		record, err := bind(jsonRequest(`{"name":"Ann","age":30,"price":10.10,"tags":["a","b"],"nil":null}`))
		require.NoError(t, err)
		assert.Equal(t, "Ann", record["name"])
		assert.Equal(t, json.Number("30"), record["age"])
		assert.Equal(t, json.Number("10.10"), record["price"])
		assert.Equal(t, []any{"a", "b"}, record["tags"])
		assert.Contains(t, record, "nil")
		assert.Nil(t, record["nil"])
	})

	t.Run("accepts charset and json suffix types", func(t *testing.T) {
		t.Parallel()
		for _, ct := range []string{"application/json; charset=utf-8", "application/vnd.api+json"} {
			req := jsonRequest(`{"a":1}`)
			req.Header.Set("Content-Type", ct)
			_, err := bind(req)
			assert.NoError(t, err, ct)
		}
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong content type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"malformed", `{"a":`, "application/json", binder.ErrFailedToParseJSON},
		{"array document", `[1,2]`, "application/json", binder.ErrFailedToParseJSON},
		{"null document", `null`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"a":1} {"b":2}`, "application/json", binder.ErrFailedToParseJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			_, err := bind(req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		_, err := binder.JSON(8)(jsonRequest(`{"name":"too long"}`))
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("url encoded", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Ann&tags[]=a&tags[]=b&role=x&role=y&one[]=z"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		record, err := binder.Form(0)(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name": "Ann",
			"tags": []any{"a", "b"},
			"role": []any{"x", "y"},
			"one":  []any{"z"},
		}, record)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "Ann"))
		fw, err := mw.CreateFormFile("avatar", "a.png")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("png"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		record, err := binder.Form(0)(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "Ann"}, record)
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		_, err := binder.Form(0)(jsonRequest(`{}`))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name="+strings.Repeat("a", 64)))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := binder.Form(16)(req)
		assert.ErrorIs(t, err, binder.ErrBodyTooLarge)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en&ids[]=1&ids[]=2", nil)
	record, err := binder.Query()(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"lang": "en", "ids": []any{"1", "2"}}, record)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.URL.RawQuery = "a=%zz"
	_, err = binder.Query()(req)
	assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
}

func TestRequest(t *testing.T) {
	t.Parallel()

	bind := binder.Request(0)

	t.Run("get binds query", func(t *testing.T) {
		t.Parallel()
		record, err := bind(httptest.NewRequest(http.MethodGet, "/?lang=en", nil))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"lang": "en"}, record)
	})

	t.Run("json body wins over query", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?lang=en&page=2", strings.NewReader(`{"lang":"th"}`))
		req.Header.Set("Content-Type", "application/json")
		record, err := bind(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"lang": "th", "page": "2"}, record)
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("a=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		record, err := bind(req)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "1"}, record)
	})

	t.Run("empty post", func(t *testing.T) {
		t.Parallel()
		record, err := bind(httptest.NewRequest(http.MethodPost, "/?a=1", nil))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "1"}, record)
	})

	t.Run("unsupported body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<a/>"))
		req.Header.Set("Content-Type", "application/xml")
		_, err := bind(req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("body without content type", func(t *testing.T) {
		t.Parallel()
		_, err := bind(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x")))
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})
}

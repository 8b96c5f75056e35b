package binder

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds application/x-www-form-urlencoded and multipart/form-data
// bodies. Uploaded files are not part of the record. maxBytes <= 0 uses
// DefaultMaxMemory.
//
// A key that occurs once becomes a string; repeated keys and keys ending in
// "[]" become sequences:
//
//	name=Ann&tags[]=a&tags[]=b  ->  {"name": "Ann", "tags": ["a", "b"]}
func Form(maxBytes int64) Func {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxMemory
	}

	return func(r *http.Request) (map[string]any, error) {
		mt, err := mediaType(r)
		if err != nil {
			return nil, err
		}
		if r.Body != nil {
			r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		}

		var values url.Values
		switch mt {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return nil, formError(err)
			}
			values = r.PostForm
		case "multipart/form-data":
			if err := r.ParseMultipartForm(maxBytes); err != nil {
				return nil, formError(err)
			}
			values = r.MultipartForm.Value
		default:
			return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
		}

		return fromValues(values), nil
	}
}

// Query binds the URL query string.
func Query() Func {
	return func(r *http.Request) (map[string]any, error) {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseQuery, err)
		}
		return fromValues(values), nil
	}
}

func formError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", ErrInvalidForm, err)
}

func fromValues(values url.Values) map[string]any {
	record := make(map[string]any, len(values))
	for key, vals := range values {
		name, isList := strings.CutSuffix(key, "[]")
		if name == "" {
			continue
		}
		if !isList && len(vals) == 1 {
			record[name] = vals[0]
			continue
		}
		items, _ := record[name].([]any)
		for _, v := range vals {
			items = append(items, v)
		}
		record[name] = items
	}
	return record
}

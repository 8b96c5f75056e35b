package binder

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// Func builds a record from a request.
type Func func(r *http.Request) (map[string]any, error)

// mediaType returns the media type of the request without parameters.
func mediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	return strings.ToLower(mt), nil
}

// Request picks a binder by method and content type: requests without a
// body bind the query string; JSON and form bodies are merged over the
// query string, so body fields win.
func Request(maxBytes int64) Func {
	jsonBinder := JSON(maxBytes)
	formBinder := Form(maxBytes)
	queryBinder := Query()

	return func(r *http.Request) (map[string]any, error) {
		record, err := queryBinder(r)
		if err != nil {
			return nil, err
		}

		if r.Body == nil || r.Body == http.NoBody || r.Header.Get("Content-Type") == "" {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodDelete, http.MethodOptions:
				return record, nil
			}
			if r.ContentLength <= 0 {
				return record, nil
			}
		}

		mt, err := mediaType(r)
		if err != nil {
			return nil, err
		}

		var body map[string]any
		switch {
		case mt == "application/json" || strings.HasSuffix(mt, "+json"):
			body, err = jsonBinder(r)
		case mt == "application/x-www-form-urlencoded" || mt == "multipart/form-data":
			body, err = formBinder(r)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
		}
		if err != nil {
			return nil, err
		}

		for k, v := range body {
			record[k] = v
		}
		return record, nil
	}
}

// Package binder turns HTTP requests into untyped records ready for
// validation.
//
// JSON decodes an object body keeping numbers as json.Number. Form decodes
// url-encoded and multipart bodies, Query the URL query string. Request
// chooses between them by content type and merges the body over the query
// string:
//
//	record, err := binder.Request(1 << 20)(r)
//	if err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType) ...
//	}
//
// Form and query values that occur once are strings; repeated keys and keys
// ending in "[]" are sequences of strings.
package binder

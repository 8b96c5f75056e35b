package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON binds a JSON object body. Numbers are kept as json.Number so
// coercion transforms see the exact digits. maxBytes <= 0 uses
// DefaultMaxJSONSize.
func JSON(maxBytes int64) Func {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxJSONSize
	}

	return func(r *http.Request) (map[string]any, error) {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, r.Context().Err())
		default:
		}

		mt, err := mediaType(r)
		if err != nil {
			return nil, err
		}
		if mt != "application/json" && !strings.HasSuffix(mt, "+json") {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}

		if r.Body == nil {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes+1))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > maxBytes {
			return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, maxBytes)
		}

		return DecodeJSON(body)
	}
}

// DecodeJSON decodes a single JSON object. Trailing data and non-object
// documents are rejected.
func DecodeJSON(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var record map[string]any
	if err := decoder.Decode(&record); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrFailedToParseJSON)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	return record, nil
}

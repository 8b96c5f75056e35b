package paramparser

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

func present(record Record, name string) bool {
	v, ok := record[name]
	return ok && v != nil
}

// blank values skip format checking.
func blank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// fieldNames returns spec keys in a stable order so failure messages and
// evaluation order do not depend on map iteration.
func fieldNames(spec Spec) []string {
	return slices.Sorted(maps.Keys(spec))
}

// asSequence views slices and arrays as []any. Byte slices are scalars.
func asSequence(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	case []Record:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asRecord views map values as records. A nil element is an empty record.
func asRecord(v any) (Record, bool) {
	switch r := v.(type) {
	case nil:
		return Record{}, true
	case Record:
		return r, true
	case map[string]string:
		out := make(Record, len(r))
		for k, item := range r {
			out[k] = item
		}
		return out, true
	}
	return nil, false
}

// text renders scalar values for pattern matching. Sequences, records and
// other composite values have no text form.
func text(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case json.Number:
		return s.String(), true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(s).Int(), 10), true
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(s).Uint(), 10), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

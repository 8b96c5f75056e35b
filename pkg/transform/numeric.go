package transform

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt coerces strings, json.Number and numeric values to int64.
// Floats must be whole numbers.
func ToInt(value any) (any, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrCoercion, v)
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrCoercion, v)
		}
		return int64(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case json.Number:
		return parseInt(v.String())
	case string:
		return parseInt(v)
	}
	return nil, fmt.Errorf("%w: %T to int", ErrCoercion, value)
}

// ToFloat coerces strings, json.Number and numeric values to float64.
func ToFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return parseFloat(v.String())
	case string:
		return parseFloat(v)
	}
	return nil, fmt.Errorf("%w: %T to float", ErrCoercion, value)
}

// Truncate coerces like ToFloat and drops the fractional part, so "10.10" becomes 10.
func Truncate(value any) (any, error) {
	f, err := ToFloat(value)
	if err != nil {
		return nil, err
	}
	t := math.Trunc(f.(float64))
	if t >= math.MaxInt64 || t < math.MinInt64 || math.IsNaN(t) {
		return nil, fmt.Errorf("%w: %v overflows int64", ErrCoercion, f)
	}
	return int64(t), nil
}

// ToBool coerces booleans, strconv.ParseBool strings and json.Number 0/1.
func ToBool(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %q to bool", ErrCoercion, v)
		}
		return b, nil
	case json.Number:
		return ToBool(v.String())
	}
	return nil, fmt.Errorf("%w: %T to bool", ErrCoercion, value)
}

// Clamp limits numeric values to [lo, hi]. Non-numeric values pass through.
func Clamp(lo, hi float64) Func {
	return func(value any) (any, error) {
		switch v := value.(type) {
		case float64:
			return math.Min(math.Max(v, lo), hi), nil
		case int64:
			return int64(math.Min(math.Max(float64(v), lo), hi)), nil
		case int:
			return int(math.Min(math.Max(float64(v), lo), hi)), nil
		}
		return value, nil
	}
}

func parseInt(s string) (any, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q to int", ErrCoercion, s)
	}
	return floatToInt(f)
}

func parseFloat(s string) (any, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q to float", ErrCoercion, s)
	}
	return f, nil
}

func floatToInt(f float64) (any, error) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return nil, fmt.Errorf("%w: %v is not a whole number", ErrCoercion, f)
	}
	return int64(f), nil
}

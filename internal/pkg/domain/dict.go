package domain

import (
	"time"
)

func putText(d map[string]any, key, value string) {
	if value != "" {
		d[key] = value
	}
}

// dictReader pulls typed values out of a loosely typed dict and remembers
// the first type mismatch per key.
type dictReader struct {
	record string
	d      map[string]any
	errs   ValidationErrors
}

func (r *dictReader) fail(key string, value any, err error) {
	r.errs = append(r.errs, &ValidationError{Record: r.record, Field: key, Value: value, Err: err})
}

func (r *dictReader) has(key string) bool {
	_, ok := r.d[key]
	return ok
}

func (r *dictReader) text(key string) string {
	s, _ := r.optionalText(key)
	if s == nil {
		return ""
	}
	return *s
}

// optionalText distinguishes a missing key (ok == false) from a key that is
// present with a nil value (ok == true, nil result).
func (r *dictReader) optionalText(key string) (*string, bool) {
	value, ok := r.d[key]
	if !ok {
		return nil, false
	}
	if value == nil {
		return nil, true
	}
	s, isString := value.(string)
	if !isString {
		r.fail(key, value, ErrInvalidType)
		return nil, true
	}
	return &s, true
}

func (r *dictReader) texts(key string) []string {
	value, ok := r.d[key]
	if !ok || value == nil {
		return nil
	}

	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, isString := item.(string)
			if !isString {
				r.fail(key, item, ErrInvalidType)
				return nil
			}
			result = append(result, s)
		}
		return result
	}

	r.fail(key, value, ErrInvalidType)
	return nil
}

func (r *dictReader) integer(key string) *int64 {
	value, ok := r.d[key]
	if !ok || value == nil {
		return nil
	}

	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != float64(int64(v)) {
			r.fail(key, value, ErrInvalidType)
			return nil
		}
		n = int64(v)
	default:
		r.fail(key, value, ErrInvalidType)
		return nil
	}
	return &n
}

func (r *dictReader) timestamp(key string) *time.Time {
	value, ok := r.d[key]
	if !ok || value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		t, err := ParseTimestamp(v)
		if err != nil {
			r.fail(key, value, ErrInvalidTimestamp)
			return nil
		}
		return &t
	}

	r.fail(key, value, ErrInvalidType)
	return nil
}

func (r *dictReader) dict(key string) map[string]any {
	value, ok := r.d[key]
	if !ok || value == nil {
		return nil
	}
	d, isDict := value.(map[string]any)
	if !isDict {
		r.fail(key, value, ErrInvalidType)
		return nil
	}
	return d
}

func (r *dictReader) dicts(key string) []map[string]any {
	value, ok := r.d[key]
	if !ok || value == nil {
		return nil
	}

	switch v := value.(type) {
	case []map[string]any:
		return v
	case []any:
		result := make([]map[string]any, 0, len(v))
		for _, item := range v {
			d, isDict := item.(map[string]any)
			if !isDict {
				r.fail(key, item, ErrInvalidType)
				return nil
			}
			result = append(result, d)
		}
		return result
	}

	r.fail(key, value, ErrInvalidType)
	return nil
}

func (r *dictReader) err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs
}

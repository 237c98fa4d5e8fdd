package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fields reads typed values out of a decoded JSON object. The first failure
// is kept in err and every later read becomes a no-op, so a factory can read
// all of its fields and check err once.
type fields struct {
	entity string
	rec    map[string]any
	err    error
}

func read(entity string, rec map[string]any) *fields {
	return &fields{entity: entity, rec: rec}
}

func (f *fields) lookup(key string, optional bool) (any, bool) {
	if f.err != nil {
		return nil, false
	}
	v, ok := f.rec[key]
	if !ok || v == nil {
		if !optional {
			f.err = missingField(f.entity, key)
		}
		return nil, false
	}
	return v, true
}

func (f *fields) integer(key string) int64 {
	v, ok := f.lookup(key, false)
	if !ok {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		f.err = invalidField(f.entity, key, "must be a number")
		return 0
	}
	return n
}

func (f *fields) optInteger(key string) *int64 {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil
	}
	n, ok := toInt(v)
	if !ok {
		f.err = invalidField(f.entity, key, "must be a number")
		return nil
	}
	return &n
}

// str reads a string and checks it against validator rules.
func (f *fields) str(key, rules string) string {
	v, ok := f.lookup(key, false)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.err = invalidField(f.entity, key, "must be a string")
		return ""
	}
	if err := validate.Var(s, rules); err != nil {
		f.err = ruleFailed(f.entity, key, err)
		return ""
	}
	return s
}

func (f *fields) optStr(key string) *string {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		f.err = invalidField(f.entity, key, "must be a string")
		return nil
	}
	return &s
}

func (f *fields) optBool(key string) *bool {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		f.err = invalidField(f.entity, key, "must be a boolean")
		return nil
	}
	return &b
}

func (f *fields) object(key string) map[string]any {
	v, ok := f.lookup(key, false)
	if !ok {
		return nil
	}
	return f.asObject(key, v)
}

func (f *fields) optObject(key string) map[string]any {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil
	}
	return f.asObject(key, v)
}

func (f *fields) asObject(key string, v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		f.err = invalidField(f.entity, key, "must be an object")
		return nil
	}
	return m
}

func (f *fields) list(key string) []any {
	v, ok := f.lookup(key, false)
	if !ok {
		return nil
	}
	return f.asList(key, v)
}

// optList reports whether key was present at all, so callers can tell an
// absent list from an empty one.
func (f *fields) optList(key string) ([]any, bool) {
	v, ok := f.lookup(key, true)
	if !ok {
		return nil, false
	}
	l := f.asList(key, v)
	return l, f.err == nil
}

func (f *fields) asList(key string, v any) []any {
	l, ok := v.([]any)
	if !ok {
		f.err = invalidField(f.entity, key, "must be a list")
		return nil
	}
	if l == nil {
		l = []any{}
	}
	return l
}

// nested records the failure of a nested factory under key.
func (f *fields) nested(key string, err error) {
	if f.err == nil && err != nil {
		f.err = nestedInvalid(f.entity, key, err)
	}
}

// toInt accepts every numeric shape a decoded record may carry. Fractions are
// truncated toward zero.
func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// fromList applies one factory to every item and drops items whose identity
// was already seen, keeping the first.
func fromList[T any](entity string, items []any, build func(map[string]any) (T, error), key func(T) string) ([]T, error) {
	out := make([]T, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, invalidField(entity, fmt.Sprintf("[%d]", i), "must be an object")
		}
		v, err := build(rec)
		if err != nil {
			return nil, err
		}
		k := key(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func extKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func toRecords[T interface{ ToRecord() map[string]any }](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item.ToRecord()
	}
	return out
}

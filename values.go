package scopenv

import (
	"sort"
	"strconv"
)

// Value is one parsed variable. An unset Value stands for an optional
// variable that was absent from the source.
type Value struct {
	kind Kind
	set  bool
	s    string
	n    float64
	b    bool
}

// Kind returns the declared kind of the variable.
func (v Value) Kind() Kind { return v.kind }

// IsSet reports whether the variable was present in the source.
func (v Value) IsSet() bool { return v.set }

// String returns the value as text. Strings are returned unchanged.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

// Float returns the numeric payload, zero for other kinds.
func (v Value) Float() float64 { return v.n }

// Bool returns the boolean payload, false for other kinds.
func (v Value) Bool() bool { return v.b }

// Any returns the payload as string, float64 or bool, or nil when unset.
func (v Value) Any() any {
	if !v.set {
		return nil
	}
	switch v.kind {
	case KindNumber:
		return v.n
	case KindBool:
		return v.b
	default:
		return v.s
	}
}

// Values is the frozen result of parsing a schema. It has exactly one
// entry per schema key and cannot be modified after construction.
type Values struct {
	m map[string]Value
}

// Lookup returns the value stored under the schema key.
func (vs Values) Lookup(key string) (Value, bool) {
	v, ok := vs.m[key]
	return v, ok
}

// String returns a string variable. ok is false when the key is unknown,
// unset, or not a string.
func (vs Values) String(key string) (string, bool) {
	v, ok := vs.m[key]
	if !ok || !v.set || v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Number returns a numeric variable.
func (vs Values) Number(key string) (float64, bool) {
	v, ok := vs.m[key]
	if !ok || !v.set || v.kind != KindNumber {
		return 0, false
	}
	return v.n, true
}

// Bool returns a boolean variable.
func (vs Values) Bool(key string) (bool, bool) {
	v, ok := vs.m[key]
	if !ok || !v.set || v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Len returns the number of schema keys.
func (vs Values) Len() int { return len(vs.m) }

// Keys returns the schema keys, sorted.
func (vs Values) Keys() []string {
	keys := make([]string, 0, len(vs.m))
	for k := range vs.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a fresh copy of the values as plain Go types. Unset
// variables map to nil. Changing the returned map does not affect vs.
func (vs Values) Map() map[string]any {
	out := make(map[string]any, len(vs.m))
	for k, v := range vs.m {
		out[k] = v.Any()
	}
	return out
}

package scopenv

import (
	"fmt"
	"sort"
)

// Kind is the declared type of a variable.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Declaration describes one schema entry: its kind, whether it must be
// present, and the checks run against its parsed value.
//
// The zero value is a required string without checks.
type Declaration struct {
	kind     Kind
	optional bool
	secret   bool
	check    func(Value) error
}

// String declares a string variable.
func String(checks ...func(string) error) Declaration {
	return Declaration{kind: KindString, check: chain(checks, Value.String)}
}

// Number declares a numeric variable. Values are parsed as float64.
func Number(checks ...func(float64) error) Declaration {
	return Declaration{kind: KindNumber, check: chain(checks, Value.Float)}
}

// Bool declares a boolean variable accepting "true", "false", "1" and "0".
func Bool(checks ...func(bool) error) Declaration {
	return Declaration{kind: KindBool, check: chain(checks, Value.Bool)}
}

// Optional marks the variable as not required. An absent optional variable
// is left unset in the result.
func (d Declaration) Optional() Declaration {
	d.optional = true
	return d
}

// Required sets whether the variable must be present.
func (d Declaration) Required(required bool) Declaration {
	d.optional = !required
	return d
}

// Secret masks the value when printed.
func (d Declaration) Secret() Declaration {
	d.secret = true
	return d
}

// Kind returns the declared kind.
func (d Declaration) Kind() Kind { return d.kind }

// IsRequired reports whether the variable must be present.
func (d Declaration) IsRequired() bool { return !d.optional }

// IsSecret reports whether the value is masked when printed.
func (d Declaration) IsSecret() bool { return d.secret }

func chain[T any](checks []func(T) error, get func(Value) T) func(Value) error {
	if len(checks) == 0 {
		return nil
	}
	return func(v Value) error {
		x := get(v)
		for _, c := range checks {
			if c == nil {
				continue
			}
			if err := c(x); err != nil {
				return err
			}
		}
		return nil
	}
}

// Predicate turns a yes/no check into one usable with String, Number or
// Bool. A false result fails with the generic validation message.
func Predicate[T any](ok func(T) bool) func(T) error {
	return func(v T) error {
		if !ok(v) {
			return ErrRejected
		}
		return nil
	}
}

// Schema maps variable names to their declarations.
type Schema map[string]Declaration

// Keys returns the schema keys in the order they are processed.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package scopenv

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// parseValue converts raw according to kind. key is only used in errors.
func parseValue(key string, kind Kind, raw string) (Value, error) {
	switch kind {
	case KindString:
		return Value{kind: KindString, set: true, s: raw}, nil

	case KindNumber:
		n, err := parseNumber(raw)
		if err != nil {
			return Value{}, &Error{Key: key, Err: fmt.Errorf("%w: %q is not a number", ErrInvalidNumber, raw)}
		}
		return Value{kind: KindNumber, set: true, n: n}, nil

	case KindBool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, &Error{Key: key, Err: fmt.Errorf("%w: %q, accepted values are \"true\", \"false\", \"1\", \"0\"", ErrInvalidBoolean, raw)}
		}
		return Value{kind: KindBool, set: true, b: b}, nil

	default:
		return Value{}, &Error{Key: key, Err: fmt.Errorf("unknown kind %s", kind)}
	}
}

// parseNumber accepts decimal and scientific notation, and 0x/0o/0b
// integer literals of any length, with surrounding whitespace. Empty
// strings and non-finite results are errors.
func parseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	if n, ok := parseRadix(s); ok {
		return n, nil
	}
	// ParseFloat also takes "inf", "nan" and hex floats; only plain
	// decimal digits, sign, dot and exponent are number literals here.
	if strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789+-.eE", r)
	}) >= 0 {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func parseRadix(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	digits := s[2:]
	if strings.ContainsRune(digits, '_') || strings.ContainsAny(digits[:1], "+-") {
		return 0, false
	}
	i, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(i).Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseBool(raw string) (bool, error) {
	switch raw {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, strconv.ErrSyntax
	}
}

package scopenv

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// Bind copies vs into a new T. Each exported field is filled from the key
// in its `env` tag, or from its name in SCREAMING_SNAKE_CASE. Fields whose
// key is not in vs are left alone; a tag of "-" skips the field.
//
// Supported field types are string, bool, the int, uint and float
// families, time.Duration (from seconds) and pointers to those. Pointer
// fields stay nil for unset optional variables.
func Bind[T any](vs Values) (*T, error) {
	return BindWith[T](vs, defaultMapper)
}

// BindWith is like Bind but maps untagged field names with km.
func BindWith[T any](vs Values, km KeyMapper) (*T, error) {
	var cfg T
	v := reflect.ValueOf(&cfg).Elem()
	if v.Kind() != reflect.Struct {
		return nil, &Error{Err: fmt.Errorf("%w: %s is not a struct", ErrBind, v.Type())}
	}
	if err := bindStruct(v, vs, km); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func bindStruct(v reflect.Value, vs Values, km KeyMapper) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fv := v.Field(i)

		if !fv.CanSet() {
			continue
		}

		key := field.Tag.Get("env")
		if key == "-" {
			continue
		}
		if key == "" {
			key = km.Field(field.Name)
		}

		val, ok := vs.Lookup(key)
		if !ok {
			continue
		}

		if err := setField(fv, val); err != nil {
			return &Error{Key: key, Err: fmt.Errorf("%w: field %s: %v", ErrBind, field.Name, err)}
		}
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func setField(fv reflect.Value, val Value) error {
	if fv.Kind() == reflect.Ptr {
		if !val.IsSet() {
			fv.Set(reflect.Zero(fv.Type()))
			return nil
		}
		p := reflect.New(fv.Type().Elem())
		if err := setField(p.Elem(), val); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	}

	if !val.IsSet() {
		return nil
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(val.String())

	case reflect.Bool:
		if val.Kind() != KindBool {
			return fmt.Errorf("cannot assign %s to bool", val.Kind())
		}
		fv.SetBool(val.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if val.Kind() != KindNumber {
			return fmt.Errorf("cannot assign %s to %s", val.Kind(), fv.Type())
		}
		n := val.Float()
		if fv.Type() == durationType {
			n *= float64(time.Second)
			n = math.Trunc(n)
		}
		// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 || fv.OverflowInt(int64(n)) {
			return fmt.Errorf("%v does not fit in %s", val.Float(), fv.Type())
		}
		fv.SetInt(int64(n))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if val.Kind() != KindNumber {
			return fmt.Errorf("cannot assign %s to %s", val.Kind(), fv.Type())
		}
		n := val.Float()
		if n < 0 || n != math.Trunc(n) || n >= math.MaxUint64 || fv.OverflowUint(uint64(n)) {
			return fmt.Errorf("%v does not fit in %s", n, fv.Type())
		}
		fv.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		if val.Kind() != KindNumber {
			return fmt.Errorf("cannot assign %s to %s", val.Kind(), fv.Type())
		}
		if fv.OverflowFloat(val.Float()) {
			return fmt.Errorf("%v does not fit in %s", val.Float(), fv.Type())
		}
		fv.SetFloat(val.Float())

	default:
		return fmt.Errorf("unsupported type %s", fv.Type())
	}
	return nil
}

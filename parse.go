package ineed

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// parser parses written input into a T.
type parser[T any] func(s string) (T, bool)

// newParser returns the parser of T. It panics if T cannot be parsed from
// text: T must implement encoding.TextUnmarshaler through its pointer, or be
// of a string, boolean, integer or floating-point kind.
func newParser[T any]() parser[T] {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		return parseText[T]
	}

	switch typ.Kind() {
	case reflect.String,
		reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return parseKind[T]
	default:
		panic(fmt.Sprintf("ineed: cannot parse written input into %s", typ))
	}
}

func parseText[T any](s string) (T, bool) {
	var v T
	u, ok := any(&v).(encoding.TextUnmarshaler)
	if !ok {
		return v, false
	}
	if err := u.UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// parseKind parses s according to the kind of T. Values out of the range of
// T are rejected.
func parseKind[T any](s string) (T, bool) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, false
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, false
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, false
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, false
		}
		rv.SetFloat(f)
	default:
		return v, false
	}
	return v, true
}

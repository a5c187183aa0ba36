package format

import (
	"encoding"
	"fmt"
	"reflect"
)

// Formatter converts a leaf value to its form value.
type Formatter interface {
	Format(v any) (string, error)
}

// Func adapts a function to the Formatter interface.
type Func func(v any) (string, error)

// Format implements the Formatter interface.
func (fn Func) Format(v any) (string, error) {
	return fn(v)
}

// Of adapts a typed function to a Formatter for values of type T.
func Of[T any](fn func(T) string) Formatter {
	if fn == nil {
		panic("formatter function cannot be nil")
	}

	return Func(func(v any) (string, error) {
		t, ok := v.(T)
		if !ok {
			return "", fmt.Errorf("%w: want %v, got %T", ErrTypeMismatch, reflect.TypeFor[T](), v)
		}
		return fn(t), nil
	})
}

// OfE adapts a typed, failing function to a Formatter for values of type T.
func OfE[T any](fn func(T) (string, error)) Formatter {
	if fn == nil {
		panic("formatter function cannot be nil")
	}

	return Func(func(v any) (string, error) {
		t, ok := v.(T)
		if !ok {
			return "", fmt.Errorf("%w: want %v, got %T", ErrTypeMismatch, reflect.TypeFor[T](), v)
		}
		return fn(t)
	})
}

// Default is the formatter of values no registry formatter applies to.
var Default Formatter = Func(Stringify)

// Stringify returns the default string form of v: the MarshalText result for
// text marshalers, the String result for fmt.Stringer values, and the fmt %v
// form otherwise. Methods declared on the pointer type are honored too.
// A nil v yields "".
func Stringify(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	if tm, ok := asPointerAware[encoding.TextMarshaler](v); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}

	if s, ok := asPointerAware[fmt.Stringer](v); ok {
		return s.String(), nil
	}

	return fmt.Sprint(v), nil
}

// asPointerAware asserts v to I, retrying on a pointer to a copy of v.
func asPointerAware[I any](v any) (I, bool) {
	if i, ok := v.(I); ok {
		return i, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		var zero I
		return zero, false
	}

	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	i, ok := ptr.Interface().(I)
	return i, ok
}

package tree

import (
	"fmt"
	"reflect"
	"unsafe"

	"form-flattener/format"
	"form-flattener/member"
	"form-flattener/primitive"
)

// render returns the form value of the non-nil leaf v declared as declared.
// A formatter for the declared type wins, then formatters are looked up along
// the pointer chain of the dynamic value, outermost type first; without one
// the value is stringified.
func (w *walker) render(declared reflect.Type, v reflect.Value) (string, error) {
	if declared != nil {
		if f, ok := w.classifier.Formatters.FormatterFor(declared); ok {
			x, err := readable(v)
			if err != nil {
				return "", err
			}
			return f.Format(x)
		}
	}

	for {
		for v.Kind() == reflect.Interface {
			v = v.Elem()
		}

		if f, ok := w.classifier.Formatters.FormatterFor(v.Type()); ok {
			x, err := readable(v)
			if err != nil {
				return "", err
			}
			return f.Format(x)
		}

		if v.Kind() != reflect.Ptr {
			break
		}
		v = v.Elem()
	}

	if primitive.FromReflectType(v.Type()) == primitive.KindBytes {
		return string(v.Bytes()), nil
	}

	x, err := readable(v)
	if err != nil {
		return "", err
	}

	return format.Stringify(x)
}

func readable(v reflect.Value) (any, error) {
	if !v.CanInterface() {
		return nil, fmt.Errorf("%w: %v value is not exported", ErrInaccessible, v.Type())
	}

	return v.Interface(), nil
}

// field reads member m of the addressable struct sv. It reports false when an
// embedded pointer on the way to the member is nil.
func field(sv reflect.Value, m member.Member) (reflect.Value, bool, error) {
	v := sv
	for i, x := range m.Index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false, nil
			}
			v = v.Elem()
		}

		if v.Kind() != reflect.Struct || x < 0 || x >= v.NumField() {
			return reflect.Value{}, false, fmt.Errorf("%w: index %v does not lead to a field of %v",
				ErrInaccessible, m.Index, sv.Type())
		}
		v = v.Field(x)
	}

	if v.CanInterface() {
		return v, true, nil
	}
	if !v.CanAddr() {
		return reflect.Value{}, false, fmt.Errorf("%w: %s is not addressable", ErrInaccessible, m.FieldName)
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), true, nil
}

// addressable returns an addressable copy of v.
func addressable(v reflect.Value) reflect.Value {
	cp := reflect.New(v.Type()).Elem()
	cp.Set(v)

	return cp
}

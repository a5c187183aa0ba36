package node

import (
	"encoding"
	"reflect"

	"form-flattener/format"
	"form-flattener/primitive"
)

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// Classifier decides the Class of values. The zero value classifies by
// declared type without any formatter registry.
type Classifier struct {
	Formatters *format.Registry
	Elements   ElementMode
}

// Classify returns the class of v, declared as declared. A nil declared type
// (root values) or ByRuntimeType classifies by the dynamic type of v.
// Callers handle nil values before classification.
func (c Classifier) Classify(declared reflect.Type, v reflect.Value) Class {
	t := c.EffectiveType(declared, v)
	if t == nil {
		return ClassInvalid
	}

	return c.ClassifyType(t)
}

// EffectiveType returns the type classification is based on: declared, or
// the dynamic type of v when declared is nil, or when the mode is
// ByRuntimeType and no formatter is registered for declared.
func (c Classifier) EffectiveType(declared reflect.Type, v reflect.Value) reflect.Type {
	if declared != nil && (c.Elements == ByDeclaredType || c.Formatters.HasFormatterFor(declared)) {
		return declared
	}

	v = unwrapInterface(v)
	if !v.IsValid() {
		return declared
	}

	return v.Type()
}

// ClassifyType returns the class of values of type t. Pointers are classified
// as the type they point to unless a formatter is registered for the pointer
// type itself.
func (c Classifier) ClassifyType(t reflect.Type) Class {
	for t.Kind() == reflect.Ptr {
		if c.Formatters.HasFormatterFor(t) {
			return ClassLeaf
		}
		t = t.Elem()
	}

	if c.IsLeafType(t) {
		return ClassLeaf
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return ClassOrdered
	case reflect.Map:
		return ClassKeyed
	case reflect.Struct:
		return ClassComplex
	case reflect.Interface:
		// only reachable by declared type: heterogeneous content is not looked into
		return ClassLeaf
	case reflect.Func:
		switch {
		case IsSeq(t):
			return ClassOrdered
		case IsSeq2(t):
			return ClassKeyed
		}
	}

	return ClassInvalid
}

// IsLeafType reports whether values of the non-pointer type t are leaves:
// primitive kinds and enums, types with a formatter, and text marshalers
// such as big numbers, uuid.UUID or netip.Addr.
func (c Classifier) IsLeafType(t reflect.Type) bool {
	if primitive.FromReflectType(t) != 0 || c.Formatters.HasFormatterFor(t) {
		return true
	}

	if t.Kind() == reflect.Interface {
		return false
	}

	return t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType)
}

// IsSeq reports whether t has the shape of iter.Seq: func(yield func(V) bool).
func IsSeq(t reflect.Type) bool {
	return isIterator(t, 1)
}

// IsSeq2 reports whether t has the shape of iter.Seq2: func(yield func(K, V) bool).
func IsSeq2(t reflect.Type) bool {
	return isIterator(t, 2)
}

func isIterator(t reflect.Type, arity int) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}

	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == arity &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

// ElemType returns the declared element type of a container type: the
// element type of slices, arrays and maps, the yielded value type of
// iterators. Pointers to containers are dereferenced.
func ElemType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch {
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Array, t.Kind() == reflect.Map:
		return t.Elem()
	case IsSeq(t):
		return t.In(0).In(0)
	case IsSeq2(t):
		return t.In(0).In(1)
	}

	return nil
}

// IsNil reports whether v holds no value: invalid values and nil pointers,
// interfaces, maps, slices and functions, through any pointer or interface
// indirection.
func IsNil(v reflect.Value) bool {
	for {
		if !v.IsValid() {
			return true
		}

		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return true
			}
			v = v.Elem()
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return v.IsNil()
		default:
			return false
		}
	}
}

// Indirect follows pointers and interfaces down to the held value.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

package node

import (
	"cmp"
	"reflect"
	"slices"

	"form-flattener/format"
)

// SortKeys returns the keys of map m in emission order: numeric order for
// integer and float keys, false before true for booleans, and lexical order
// of the default string form for everything else.
func SortKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortStableFunc(keys, compareKeys)

	return keys
}

func compareKeys(a, b reflect.Value) int {
	a, b = unwrapInterface(a), unwrapInterface(b)
	if a.IsValid() && b.IsValid() && a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Bool:
			return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
		}
	}

	return cmp.Compare(keyString(a), keyString(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func keyString(v reflect.Value) string {
	if !v.IsValid() || !v.CanInterface() {
		return ""
	}

	s, err := format.Stringify(v.Interface())
	if err != nil {
		return ""
	}

	return s
}

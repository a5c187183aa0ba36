package format

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"form-flattener/internal/common"
	"form-flattener/utils"
)

var (
	ErrNotAFormatter           = errors.New("provided function is not a recognizable formatter")
	ErrFormatterIsNotAFunction = errors.New("provided formatter is not a function")
	ErrDoublePointer           = errors.New("formatter function does not support double pointers")
	ErrTypeMismatch            = errors.New("formatter received a value of an unexpected type")
)

var typeOfString = reflect.TypeFor[string]()

// Descriptor describes a formatter function found by ParseFormatter.
type Descriptor struct {
	Type         reflect.Type // formatted type, the only parameter of the function
	PackageAlias string
	Name         string
	HasErr       bool

	fn reflect.Value
}

// ParseFormatter inspects the provided function and returns a Descriptor if it is a valid formatter function.
//
// Supports signatures:
//   - func(v Type) string
//   - func(v Type) (string, error)
func ParseFormatter(fn any) (Descriptor, error) {
	if fn == nil {
		return Descriptor{}, ErrFormatterIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Descriptor{}, ErrFormatterIsNotAFunction
	}

	if fnVal.IsNil() || fnType.IsVariadic() || fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return Descriptor{}, ErrNotAFormatter
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Descriptor{}, ErrDoublePointer
	}

	if fnType.Out(0) != typeOfString {
		return Descriptor{}, ErrNotAFormatter
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	dir, base := path.Split(fnPC.Name())
	pkg, name := utils.Unpack2(strings.SplitN(base, ".", 2))

	desc := Descriptor{
		Type:         src,
		Name:         name,
		PackageAlias: common.PkgAlias(dir + pkg),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Descriptor{}, ErrNotAFormatter

	case 1:
		return desc, nil

	case 2:
		if !isError(fnType.Out(1)) {
			return Descriptor{}, ErrNotAFormatter
		}

		desc.HasErr = true
		return desc, nil
	}
}

// String returns the qualified function name, e.g. "strconv.Itoa".
func (d Descriptor) String() string {
	if d.PackageAlias == "" {
		return d.Name
	}

	return d.PackageAlias + "." + d.Name
}

// Formatter returns a Formatter calling the described function.
func (d Descriptor) Formatter() Formatter {
	return Func(func(v any) (string, error) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			rv = reflect.Zero(d.Type)
		}
		if !rv.Type().AssignableTo(d.Type) {
			return "", fmt.Errorf("%w: %s accepts %v, got %v", ErrTypeMismatch, d, d.Type, rv.Type())
		}

		out := d.fn.Call([]reflect.Value{rv})
		if d.HasErr && !out[1].IsNil() {
			return "", out[1].Interface().(error)
		}

		return out[0].String(), nil
	})
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}

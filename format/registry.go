package format

import (
	"fmt"
	"maps"
	"reflect"
)

// Registry maps exact types to formatters. A Registry is immutable and safe
// for concurrent use; the zero value has no custom formatters and no defaults.
type Registry struct {
	custom   map[reflect.Type]Formatter
	defaults bool
}

// NewRegistry returns a registry with built-in defaults and no custom formatters.
func NewRegistry() *Registry {
	return NewBuilder().Build()
}

// HasFormatterFor reports whether a custom or built-in formatter exists for exactly t.
func (r *Registry) HasFormatterFor(t reflect.Type) bool {
	_, ok := r.FormatterFor(t)
	return ok
}

// HasCustomFormatterFor reports whether a formatter was registered for exactly t.
func (r *Registry) HasCustomFormatterFor(t reflect.Type) bool {
	if r == nil {
		return false
	}

	_, ok := r.custom[t]
	return ok
}

// FormatterFor returns the custom formatter registered for exactly t, else
// the built-in one, else false.
func (r *Registry) FormatterFor(t reflect.Type) (Formatter, bool) {
	if r == nil || t == nil {
		return nil, false
	}

	if f, ok := r.custom[t]; ok {
		return f, true
	}

	if r.defaults {
		if f, ok := defaults[t]; ok {
			return f, true
		}
	}

	return nil, false
}

// Len returns the number of custom formatters.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.custom)
}

// ToBuilder returns a builder seeded with the registry content. Changes made
// through the builder never affect r.
func (r *Registry) ToBuilder() *Builder {
	b := &Builder{custom: map[reflect.Type]Formatter{}}
	if r != nil {
		maps.Copy(b.custom, r.custom)
		b.defaults = r.defaults
	}

	return b
}

// Builder assembles a Registry.
type Builder struct {
	custom   map[reflect.Type]Formatter
	defaults bool
}

// NewBuilder returns a builder with built-in defaults enabled.
func NewBuilder() *Builder {
	return &Builder{
		custom:   map[reflect.Type]Formatter{},
		defaults: true,
	}
}

// Register sets the formatter of values of exactly type t, replacing any
// previous registration. It panics if t or f is nil.
func (b *Builder) Register(t reflect.Type, f Formatter) *Builder {
	if t == nil {
		panic("formatter type cannot be nil")
	}
	if isNil(f) {
		panic("formatter cannot be nil")
	}

	b.custom[t] = f
	return b
}

// RegisterFunc registers fn for its parameter type; see ParseFormatter for
// the accepted signatures.
func (b *Builder) RegisterFunc(fn any) error {
	desc, err := ParseFormatter(fn)
	if err != nil {
		return fmt.Errorf("failed to register formatter %T: %w", fn, err)
	}

	b.Register(desc.Type, desc.Formatter())
	return nil
}

// Unregister removes the custom formatter of exactly type t.
func (b *Builder) Unregister(t reflect.Type) *Builder {
	delete(b.custom, t)
	return b
}

// Defaults enables or disables the built-in formatters.
func (b *Builder) Defaults(enabled bool) *Builder {
	b.defaults = enabled
	return b
}

// Build returns a registry holding a copy of the current registrations.
func (b *Builder) Build() *Registry {
	return &Registry{
		custom:   maps.Clone(b.custom),
		defaults: b.defaults,
	}
}

// Register registers fn as the formatter of values of type T.
func Register[T any](b *Builder, fn func(T) string) *Builder {
	return b.Register(reflect.TypeFor[T](), Of(fn))
}

// RegisterE registers a failing fn as the formatter of values of type T.
func RegisterE[T any](b *Builder, fn func(T) (string, error)) *Builder {
	return b.Register(reflect.TypeFor[T](), OfE(fn))
}

// isNil reports whether f is nil or wraps a nil value, such as Func(nil).
func isNil(f Formatter) bool {
	if f == nil {
		return true
	}

	switch v := reflect.ValueOf(f); v.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

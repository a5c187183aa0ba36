package format

import (
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// defaults holds the built-in formatters for well-known types. It is never
// modified after package initialization.
var defaults = map[reflect.Type]Formatter{
	reflect.TypeFor[time.Time]():     Of(func(t time.Time) string { return t.Format(time.RFC3339Nano) }),
	reflect.TypeFor[time.Duration](): Of(time.Duration.String),
	reflect.TypeFor[big.Int]():       Of(func(i big.Int) string { return i.String() }),
	reflect.TypeFor[big.Float]():     Of(func(f big.Float) string { return f.Text('f', -1) }),
	reflect.TypeFor[big.Rat]():       Of(func(r big.Rat) string { return r.RatString() }),
	reflect.TypeFor[uuid.UUID]():     Of(uuid.UUID.String),
	reflect.TypeFor[[]byte]():        Of(func(b []byte) string { return string(b) }),
	reflect.TypeFor[float32]():       Of(func(f float32) string { return strconv.FormatFloat(float64(f), 'f', -1, 32) }),
	reflect.TypeFor[float64]():       Of(func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }),
	reflect.TypeFor[bool]():          Of(strconv.FormatBool),
}

// DefaultTypes returns the types covered by built-in formatters.
func DefaultTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(defaults))
	for t := range defaults {
		types = append(types, t)
	}

	return types
}

package common

import "reflect"

// UnknownStr stands for a missing type or value in messages.
const UnknownStr = "<unknown>"

// TypeName returns the readable name of t, e.g. "[]*formtest.Address", or
// UnknownStr for a nil type.
func TypeName(t reflect.Type) string {
	if t == nil {
		return UnknownStr
	}

	return t.String()
}

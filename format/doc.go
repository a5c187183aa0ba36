// Package format converts leaf values of a form to their string form.
//
// A Registry maps exact types to Formatters. Lookups consult custom
// registrations first, then the built-in defaults for well-known types
// (time.Time, time.Duration, math/big numbers, uuid.UUID, []byte, floats).
// Values without any formatter fall back to Stringify.
//
// Registries are immutable: they are assembled with a Builder and every
// Build returns an independent copy, so registrations made for one
// configuration are never observed by another.
package format

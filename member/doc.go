// Package member discovers the structural members of struct types and decides
// which of them take part in flattening.
//
// Go fields carry no final/transient/static modifiers, so they are declared
// through the `form` struct tag:
//
//	type Account struct {
//		Login  string `form:"login"`            // renamed
//		Kind   string `form:"kind,final"`       // final
//		Cache  string `form:"cache,transient"`  // transient
//		Limits string `form:"LIMITS,static"`    // static
//		Secret string `form:"-"`                // synthetic, never flattened
//	}
//
// Key types:
//   - Member: name, declared type, field index and modifiers of a struct field
//   - Discoverer: the single "member discovery" capability the flattener relies on
//   - TagDiscoverer: reflection and struct tag based Discoverer with an LRU cache
//   - Policy: the inclusion rules composed from toggles and a custom predicate
package member

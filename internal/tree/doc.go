// Package tree walks a form value and emits one form entry per leaf.
//
// The walk visits the root, then recursively every container element,
// keyed entry and included struct member, naming each leaf by its path:
//
//	usernames[0]
//	diplomas[1].name
//	metadatas[gender]
//
// Nil values are skipped, except nil values of keyed entries which produce
// the key with an empty value. Any failure aborts the whole walk with a
// *PathError naming the offending path.
package tree

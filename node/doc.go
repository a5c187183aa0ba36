// Package node holds the building blocks of the flattening walk: the Node of
// the walked value graph and its path, the Classifier deciding how a value is
// flattened, and the Guard stopping runaway recursion.
//
// Paths follow the naming of nested HTML forms:
//
//	segment ::= name | name "[" index_or_key "]"
//	path    ::= segment | path "." segment
//
// e.g. "currentAddress.city", "usernames[0]", "diplomas[1].date",
// "metadatas[firstName]".
package node

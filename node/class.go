package node

//go:generate go tool stringer -type=Class -output=class_string.go

// Class tells how a value is flattened.
type Class int

const (
	ClassInvalid Class = iota // cannot be flattened: channels, plain functions, unsafe pointers
	ClassLeaf                 // converted to a single form value
	ClassOrdered              // slices, arrays and iter.Seq functions: one child per element
	ClassKeyed                // maps and iter.Seq2 functions: one child per entry
	ClassComplex              // structs: one child per included member

	// ClassTotal is a constant that represents the total number of classes defined
	ClassTotal = int(iota)
)

// IsContainer reports whether c is an ordered or keyed container class.
func (c Class) IsContainer() bool {
	return c == ClassOrdered || c == ClassKeyed
}

// ElementMode selects which type classifies container elements and
// interface-typed members.
type ElementMode int

const (
	// ByDeclaredType classifies by the declared element type, so every element
	// of a []Diploma is Complex and every element of a []any is a Leaf.
	ByDeclaredType ElementMode = iota
	// ByRuntimeType classifies each value by its dynamic type.
	ByRuntimeType
)

// String returns "declared" or "runtime".
func (m ElementMode) String() string {
	if m == ByRuntimeType {
		return "runtime"
	}

	return "declared"
}

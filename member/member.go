package member

import (
	"reflect"

	"form-flattener/options"
)

// Member describes a struct field that may take part in flattening.
type Member struct {
	Name      string               // form name, e.g. "firstName"
	FieldName string               // Go field name, e.g. "FirstName"
	Type      reflect.Type         // declared field type
	Owner     reflect.Type         // struct type declaring the member
	Index     []int                // index sequence for reflect.Value.FieldByIndex
	Modifiers options.ModifierEnum // modifiers declared by tag options
	Exported  bool                 // whether the Go field is exported
	Promoted  bool                 // whether the member comes from an embedded struct
	Tagged    bool                 // whether the name comes from the struct tag
}

func (m Member) IsFinal() bool     { return m.Modifiers.Has(options.ModifierFinal) }
func (m Member) IsTransient() bool { return m.Modifiers.Has(options.ModifierTransient) }
func (m Member) IsStatic() bool    { return m.Modifiers.Has(options.ModifierStatic) }
func (m Member) IsSynthetic() bool { return m.Modifiers.Has(options.ModifierSynthetic) }

// Depth returns the embedding depth of the member, zero for own fields.
func (m Member) Depth() int {
	return len(m.Index) - 1
}

package options

import "strings"

// ModifierEnum is a set of structural member modifiers.
type ModifierEnum int

const (
	ModifierFinal     ModifierEnum = 1 << iota // form:",final": value is fixed for the type, like a constant
	ModifierTransient                          // form:",transient": not part of the submitted state
	ModifierStatic                             // form:",static": belongs to the type rather than the instance
	ModifierSynthetic                          // form:"-" or blank "_" field: never flattened

	ModifierAll  ModifierEnum = (1 << iota) - 1 // all modifiers combined
	ModifierNone ModifierEnum = 0               // plain member
)

// tag options recognized by ParseModifier, in bit order
var modifierNames = []string{"final", "transient", "static", "synthetic"}

// Has reports whether every modifier of o is present in m.
func (m ModifierEnum) Has(o ModifierEnum) bool {
	return o != ModifierNone && m&o == o
}

// String returns the modifiers joined by "|", or "none".
func (m ModifierEnum) String() string {
	if m == ModifierNone {
		return "none"
	}

	var parts []string
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "|")
}

// ParseModifier maps a single struct tag option to its modifier.
// Unknown options yield ModifierNone and false.
func ParseModifier(option string) (ModifierEnum, bool) {
	for i, name := range modifierNames {
		if strings.EqualFold(strings.TrimSpace(option), name) {
			return 1 << i, true
		}
	}

	return ModifierNone, false
}

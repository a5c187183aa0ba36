package member

// Predicate decides whether a member takes part in flattening.
type Predicate func(Member) bool

// Policy is the inclusion policy of members. The zero value excludes final
// members too; use DefaultPolicy for the usual defaults.
//
// Rules are combined as a conjunction: synthetic members are always excluded,
// each toggle excludes its category when off, and Custom, when set, must
// accept the member as well.
type Policy struct {
	IncludeFinal      bool
	IncludeTransient  bool
	IncludeStatic     bool
	IncludeUnexported bool
	Custom            Predicate
}

// DefaultPolicy includes final members and excludes transient, static and
// unexported ones.
func DefaultPolicy() Policy {
	return Policy{IncludeFinal: true}
}

// Allows reports whether m takes part in flattening.
func (p Policy) Allows(m Member) bool {
	switch {
	case m.IsSynthetic():
		return false
	case !p.IncludeFinal && m.IsFinal():
		return false
	case !p.IncludeTransient && m.IsTransient():
		return false
	case !p.IncludeStatic && m.IsStatic():
		return false
	case !p.IncludeUnexported && !m.Exported:
		return false
	case p.Custom != nil && !p.Custom(m):
		return false
	}

	return true
}

// Predicate returns the policy as a single predicate.
func (p Policy) Predicate() Predicate {
	return p.Allows
}

// Filter returns the members allowed by the policy, in order, in a new slice.
func (p Policy) Filter(ms []Member) []Member {
	out := make([]Member, 0, len(ms))
	for _, m := range ms {
		if p.Allows(m) {
			out = append(out, m)
		}
	}

	return out
}

// And returns a predicate accepting members accepted by both a and b.
// A nil operand accepts everything.
func And(a, b Predicate) Predicate {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	return func(m Member) bool {
		return a(m) && b(m)
	}
}

package formtest

import (
	"form-flattener/internal/profile"
	"form-flattener/internal/tree"
	"form-flattener/member"
	"form-flattener/node"
)

// PathError reports a flatten failure and the path of the value causing it.
type PathError = tree.PathError

var (
	ErrInvalidRoot     = tree.ErrInvalidRoot
	ErrUnsupportedKind = tree.ErrUnsupportedKind
	ErrInaccessible    = tree.ErrInaccessible
	ErrDuplicatePath   = tree.ErrDuplicatePath
	ErrCycle           = node.ErrCycle
	ErrMaxDepth        = node.ErrMaxDepth
	ErrDuplicateName   = member.ErrDuplicateName
)

// Profile errors returned by LoadConfiguration, ParseConfiguration and
// Builder.ApplyProfile.
var (
	ErrUnsupportedProfile  = profile.ErrUnsupportedVersion
	ErrUnknownProfileKey   = profile.ErrUnknownKey
	ErrInvalidProfileValue = profile.ErrInvalidValue
)

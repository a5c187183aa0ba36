package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"form-flattener/internal/match"
	"form-flattener/node"
	"form-flattener/utils"
)

// MaxDepthLimit is the largest accepted max_depth.
const MaxDepthLimit = 1024

var (
	ErrUnsupportedVersion = errors.New("unsupported profile version")
	ErrUnknownKey         = errors.New("unknown profile key")
	ErrInvalidValue       = errors.New("invalid profile value")
)

// Profile is a parsed flattening profile. Nil toggles keep the defaults of
// the configuration the profile is applied to.
type Profile struct {
	Version    string  `yaml:"version"`
	Include    Include `yaml:"include,omitempty"`
	Elements   string  `yaml:"elements,omitempty"`
	MaxDepth   int     `yaml:"max_depth,omitempty"`
	TimeLayout string  `yaml:"time_layout,omitempty"`
}

// Include holds the member inclusion toggles.
type Include struct {
	Final      *bool `yaml:"final,omitempty"`
	Transient  *bool `yaml:"transient,omitempty"`
	Static     *bool `yaml:"static,omitempty"`
	Unexported *bool `yaml:"unexported,omitempty"`
}

var elementModes = map[string]node.ElementMode{
	node.ByDeclaredType.String(): node.ByDeclaredType,
	node.ByRuntimeType.String():  node.ByRuntimeType,
}

var namedLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"date":        time.DateOnly,
	"datetime":    time.DateTime,
	"kitchen":     time.Kitchen,
}

// ElementMode returns the element classification mode, and false when the
// profile does not choose one.
func (p *Profile) ElementMode() (node.ElementMode, bool) {
	mode, ok := elementModes[p.Elements]
	return mode, ok
}

// Layout returns the Go time layout of time_layout, resolving named layouts,
// and false when the profile does not set one.
func (p *Profile) Layout() (string, bool) {
	if p.TimeLayout == "" {
		return "", false
	}

	if layout, ok := namedLayouts[strings.ToLower(p.TimeLayout)]; ok {
		return layout, true
	}

	return p.TimeLayout, true
}

// Validate checks the values of a profile.
func (p *Profile) Validate() error {
	if p.Version != "1" {
		return fmt.Errorf("%w %q, want \"1\"", ErrUnsupportedVersion, p.Version)
	}

	if p.Elements != "" {
		if _, ok := elementModes[p.Elements]; !ok {
			return invalid("elements", p.Elements, sortedKeys(elementModes))
		}
	}

	if p.MaxDepth != 0 && !utils.IsInRange(1, p.MaxDepth, MaxDepthLimit) {
		return fmt.Errorf("%w: max_depth %d is not in [1, %d]", ErrInvalidValue, p.MaxDepth, MaxDepthLimit)
	}

	if layout, ok := p.Layout(); ok {
		// a layout without reference time elements formats to itself
		sample := time.Date(1999, time.December, 31, 23, 59, 58, 0, time.UTC)
		if sample.Format(layout) == layout {
			return invalid("time_layout", p.TimeLayout, sortedKeys(namedLayouts))
		}
	}

	return nil
}

func invalid(key, value string, known []string) error {
	if s, ok := match.Suggest(value, known); ok {
		return fmt.Errorf("%w: %s %q, did you mean %q?", ErrInvalidValue, key, value, s)
	}

	return fmt.Errorf("%w: %s %q, want one of %s", ErrInvalidValue, key, value, strings.Join(known, ", "))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

package profile

import (
	"fmt"
	"os"
	"slices"

	"form-flattener/internal/match"

	"gopkg.in/yaml.v3"
)

var (
	topKeys     = []string{"version", "include", "elements", "max_depth", "time_layout"}
	includeKeys = []string{"final", "transient", "static", "unexported"}
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	return p, nil
}

// Parse parses and validates YAML profile data.
func Parse(data []byte) (*Profile, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	var p Profile

	if len(doc.Content) > 0 {
		root := doc.Content[0]
		if err := checkKeys(root, "", topKeys); err != nil {
			return nil, err
		}
		if include := lookup(root, "include"); include != nil {
			if err := checkKeys(include, "include.", includeKeys); err != nil {
				return nil, err
			}
		}

		if err := checkInt(root, "max_depth"); err != nil {
			return nil, err
		}

		if err := root.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
	}

	applyDefaults(&p)

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = "1"
	}
}

func checkKeys(mapping *yaml.Node, prefix string, known []string) error {
	if mapping.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: %s must be a mapping (line %d)", ErrInvalidValue, nameOr(prefix, "profile"), mapping.Line)
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		if slices.Contains(known, key.Value) {
			continue
		}

		if s, ok := match.Suggest(key.Value, known); ok {
			return fmt.Errorf("%w %s%s (line %d), did you mean %s%s?", ErrUnknownKey, prefix, key.Value, key.Line, prefix, s)
		}
		return fmt.Errorf("%w %s%s (line %d)", ErrUnknownKey, prefix, key.Value, key.Line)
	}

	return nil
}

// checkInt rejects a non-integer scalar under key, which decoding into an
// int field would otherwise truncate.
func checkInt(mapping *yaml.Node, key string) error {
	v := lookup(mapping, key)
	if v == nil {
		return nil
	}

	switch v.ShortTag() {
	case "!!int", "!!null":
		return nil
	default:
		return fmt.Errorf("%w: %s %q (line %d) is not an integer", ErrInvalidValue, key, v.Value, v.Line)
	}
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func nameOr(prefix, fallback string) string {
	if prefix == "" {
		return fallback
	}

	return prefix[:len(prefix)-1]
}

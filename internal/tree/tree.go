package tree

import (
	"fmt"
	"reflect"

	"form-flattener/member"
	"form-flattener/node"

	"go.uber.org/zap"
)

// Entry is a single form value and the path naming it.
type Entry struct {
	Path  string
	Value string
}

// Builder flattens form values. A Builder holds no state between calls and
// may be used concurrently as long as its fields are not modified.
type Builder struct {
	Classifier node.Classifier
	Policy     member.Policy
	Discoverer member.Discoverer // a TagDiscoverer when nil
	MaxDepth   int               // node.DefaultMaxDepth when not positive
	Logger     *zap.Logger       // no logging when nil
}

// Flatten returns the entries of root in first-seen order. A nil root, or a
// root holding a nil pointer or map, has no entries. On error no entries are
// returned.
func (b *Builder) Flatten(root any) ([]Entry, error) {
	if root == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(root)
	if node.IsNil(rv) {
		return nil, nil
	}

	switch class := b.Classifier.Classify(nil, rv); class {
	case node.ClassComplex, node.ClassKeyed:
		if node.Indirect(rv).Kind() == reflect.Func {
			return nil, fmt.Errorf("%w, got %T", ErrInvalidRoot, root)
		}
	default:
		return nil, fmt.Errorf("%w, got %T", ErrInvalidRoot, root)
	}

	w := b.walker()
	if err := w.visit(node.Root(rv)); err != nil {
		return nil, err
	}

	return w.entries, nil
}

func (b *Builder) walker() *walker {
	discoverer := b.Discoverer
	if discoverer == nil {
		discoverer = member.NewTagDiscoverer()
	}

	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &walker{
		classifier: b.Classifier,
		policy:     b.Policy,
		discoverer: discoverer,
		guard:      node.NewGuard(b.MaxDepth),
		logger:     logger,
		seen:       make(map[string]struct{}),
	}
}

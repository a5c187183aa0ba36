package tree

import (
	"fmt"
	"reflect"

	"form-flattener/member"
	"form-flattener/node"

	"go.uber.org/zap"
)

type walker struct {
	classifier node.Classifier
	policy     member.Policy
	discoverer member.Discoverer
	guard      *node.Guard
	logger     *zap.Logger

	entries []Entry
	seen    map[string]struct{}
}

func (w *walker) visit(n *node.Node) error {
	if node.IsNil(n.Value) {
		if n.Role == node.RoleEntry {
			return w.emit(n, "")
		}
		return nil
	}

	leave, err := w.guard.Enter(n)
	if err != nil {
		return w.fail(n, err)
	}
	defer leave()

	switch class := w.classifier.Classify(n.Declared, n.Value); class {
	case node.ClassLeaf:
		s, err := w.render(n.Declared, n.Value)
		if err != nil {
			return w.fail(n, err)
		}
		return w.emit(n, s)
	case node.ClassOrdered:
		return w.visitOrdered(n)
	case node.ClassKeyed:
		return w.visitKeyed(n)
	case node.ClassComplex:
		return w.visitComplex(n)
	default:
		return w.fail(n, fmt.Errorf("%w: %v", ErrUnsupportedKind, node.Indirect(n.Value).Kind()))
	}
}

func (w *walker) visitOrdered(n *node.Node) error {
	c := node.Indirect(n.Value)
	elem := node.ElemType(c.Type())

	if c.Kind() == reflect.Func {
		i := 0
		for v := range c.Seq() {
			if err := w.visit(n.Element(i, elem, v)); err != nil {
				return err
			}
			i++
		}
		return nil
	}

	for i := range c.Len() {
		if err := w.visit(n.Element(i, elem, c.Index(i))); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) visitKeyed(n *node.Node) error {
	c := node.Indirect(n.Value)
	elem := node.ElemType(c.Type())

	if c.Kind() == reflect.Func {
		for k, v := range c.Seq2() {
			if err := w.visitEntry(n, elem, k, v); err != nil {
				return err
			}
		}
		return nil
	}

	for _, k := range node.SortKeys(c) {
		if err := w.visitEntry(n, elem, k, c.MapIndex(k)); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) visitEntry(n *node.Node, elem reflect.Type, k, v reflect.Value) error {
	key := ""
	if !node.IsNil(k) {
		var err error
		if key, err = w.render(nil, k); err != nil {
			return w.fail(n, fmt.Errorf("map key: %w", err))
		}
	}

	return w.visit(n.Entry(key, elem, v))
}

func (w *walker) visitComplex(n *node.Node) error {
	sv := node.Indirect(n.Value)

	ms, err := w.discoverer.Members(sv.Type())
	if err != nil {
		return w.fail(n, err)
	}

	if !sv.CanAddr() {
		sv = addressable(sv)
	}

	for _, m := range ms {
		if !w.policy.Allows(m) {
			w.logger.Debug("member excluded",
				zap.String("path", n.Path()),
				zap.String("member", m.Name),
				zap.Stringer("modifiers", m.Modifiers),
				zap.Bool("exported", m.Exported))
			continue
		}

		fv, ok, err := field(sv, m)
		if err != nil {
			return w.fail(n.Member(m.Name, m.Type, reflect.Value{}), err)
		}
		if !ok {
			continue
		}

		if err := w.visit(n.Member(m.Name, m.Type, fv)); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) emit(n *node.Node, value string) error {
	path := n.Path()
	if _, ok := w.seen[path]; ok {
		return w.fail(n, ErrDuplicatePath)
	}

	w.seen[path] = struct{}{}
	w.entries = append(w.entries, Entry{Path: path, Value: value})
	return nil
}

func (w *walker) fail(n *node.Node, err error) error {
	var t reflect.Type
	if v := node.Indirect(n.Value); v.IsValid() {
		t = v.Type()
	} else {
		t = n.Declared
	}

	return &PathError{Path: n.Path(), Type: t, Err: err}
}

package node

import (
	"reflect"
	"strconv"
	"strings"
)

// Role is the position of a Node relative to its parent.
type Role int

const (
	RoleRoot    Role = iota // the flattened value itself
	RoleMember              // a struct member of a Complex parent
	RoleElement             // an element of an ordered container
	RoleEntry               // an entry of a keyed container
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RoleMember:
		return "member"
	case RoleElement:
		return "element"
	case RoleEntry:
		return "entry"
	default:
		return "unknown"
	}
}

// Node is a value met while walking a form. The walk never modifies Value.
type Node struct {
	Parent   *Node
	Role     Role
	Name     string        // member name, empty for other roles
	Index    int           // element position, for RoleElement
	Key      string        // entry key string form, for RoleEntry
	Declared reflect.Type  // declared type, nil for the root
	Value    reflect.Value // current value, possibly a pointer or interface

	path  string
	depth int
}

// Root returns the root node of v.
func Root(v reflect.Value) *Node {
	return &Node{Role: RoleRoot, Value: v}
}

// Member returns the child node of member name.
func (n *Node) Member(name string, declared reflect.Type, v reflect.Value) *Node {
	child := n.child(RoleMember, declared, v)
	child.Name = name

	p := n.Path()
	if p == "" {
		child.path = name
	} else {
		child.path = p + "." + name
	}

	return child
}

// Element returns the child node of the i-th element.
func (n *Node) Element(i int, declared reflect.Type, v reflect.Value) *Node {
	child := n.child(RoleElement, declared, v)
	child.Index = i
	child.path = n.Path() + "[" + strconv.Itoa(i) + "]"

	return child
}

// Entry returns the child node of the entry with the given key. Entries of a
// root map are named by their bare key.
func (n *Node) Entry(key string, declared reflect.Type, v reflect.Value) *Node {
	child := n.child(RoleEntry, declared, v)
	child.Key = key

	p := n.Path()
	if p == "" {
		child.path = key
	} else {
		child.path = p + "[" + key + "]"
	}

	return child
}

func (n *Node) child(role Role, declared reflect.Type, v reflect.Value) *Node {
	return &Node{
		Parent:   n,
		Role:     role,
		Declared: declared,
		Value:    v,
		depth:    n.depth + 1,
	}
}

// Path returns the form name of the node, empty for the root.
func (n *Node) Path() string {
	return n.path
}

// Depth returns the number of ancestors of the node.
func (n *Node) Depth() int {
	return n.depth
}

// Trail returns the roles and names from the root down to n, e.g.
// "root > member(diplomas) > element(1)". It is meant for diagnostics.
func (n *Node) Trail() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent {
		var part string
		switch cur.Role {
		case RoleMember:
			part = "member(" + cur.Name + ")"
		case RoleElement:
			part = "element(" + strconv.Itoa(cur.Index) + ")"
		case RoleEntry:
			part = "entry(" + cur.Key + ")"
		default:
			part = cur.Role.String()
		}
		parts = append(parts, part)
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return strings.Join(parts, " > ")
}

package formtest

import (
	"iter"
	"net/url"
	"strings"

	"form-flattener/internal/tree"
)

// Entry is a single form parameter.
type Entry = tree.Entry

// Params is the ordered set of form parameters of a form. Paths are unique
// and kept in first-seen order.
type Params struct {
	entries []Entry
	index   map[string]int
}

func newParams(entries []Entry) Params {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Path] = i
	}

	return Params{entries: entries, index: index}
}

// Get returns the value of path, or "" when absent.
func (p Params) Get(path string) string {
	v, _ := p.Lookup(path)
	return v
}

// Lookup returns the value of path and whether it is present. An empty value
// is present: it comes from an empty string or a nil map value.
func (p Params) Lookup(path string) (string, bool) {
	i, ok := p.index[path]
	if !ok {
		return "", false
	}

	return p.entries[i].Value, true
}

// Len returns the number of parameters.
func (p Params) Len() int {
	return len(p.entries)
}

// Paths returns the parameter names in order.
func (p Params) Paths() []string {
	paths := make([]string, len(p.entries))
	for i, e := range p.entries {
		paths[i] = e.Path
	}

	return paths
}

// Entries returns a copy of the parameters in order.
func (p Params) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

// All iterates over the parameters in order.
func (p Params) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range p.entries {
			if !yield(e.Path, e.Value) {
				return
			}
		}
	}
}

// Values returns the parameters as url.Values.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p.entries))
	for _, e := range p.entries {
		values.Add(e.Path, e.Value)
	}

	return values
}

// Encode returns the parameters in URL-encoded form, in order. Unlike
// url.Values.Encode, names are not sorted.
func (p Params) Encode() string {
	var b strings.Builder

	for i, e := range p.entries {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(e.Path))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(e.Value))
	}

	return b.String()
}

// String returns the parameters as name=value lines.
func (p Params) String() string {
	var b strings.Builder

	for _, e := range p.entries {
		b.WriteString(e.Path)
		b.WriteByte('=')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}

	return b.String()
}

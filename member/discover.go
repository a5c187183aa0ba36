package member

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"form-flattener/options"
	"form-flattener/primitive"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultTagKey is the struct tag key read by TagDiscoverer.
	DefaultTagKey = "form"
	// DefaultCacheSize is the number of struct types whose members are cached.
	DefaultCacheSize = 512
)

var (
	ErrNotStruct     = errors.New("member discovery requires a struct type")
	ErrDuplicateName = errors.New("form name declared by more than one field")
)

// Discoverer lists the structural members of a struct type in declaration order.
// Returned slices are shared and must not be modified.
type Discoverer interface {
	Members(t reflect.Type) ([]Member, error)
}

// DiscovererFunc adapts a function to the Discoverer interface.
type DiscovererFunc func(t reflect.Type) ([]Member, error)

// Members implements the Discoverer interface.
func (fn DiscovererFunc) Members(t reflect.Type) ([]Member, error) {
	return fn(t)
}

// TagDiscoverer discovers members by reflection, reading names and modifiers
// from a struct tag. Members of embedded structs without a tag name are
// promoted, following the visibility rules of Go selectors.
type TagDiscoverer struct {
	tagKey    string
	cacheSize int
	cache     *lru.Cache[reflect.Type, []Member]
}

// NewTagDiscoverer creates a new TagDiscoverer.
func NewTagDiscoverer(opts ...func(*TagDiscoverer)) *TagDiscoverer {
	d := &TagDiscoverer{
		tagKey:    DefaultTagKey,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.cacheSize > 0 {
		// lru.New only fails on a non-positive size
		d.cache, _ = lru.New[reflect.Type, []Member](d.cacheSize)
	}

	return d
}

// WithTagKey sets the struct tag key, "form" by default.
func WithTagKey(key string) func(*TagDiscoverer) {
	return func(d *TagDiscoverer) {
		d.tagKey = key
	}
}

// WithCacheSize sets the number of cached struct types. Zero disables caching.
func WithCacheSize(size int) func(*TagDiscoverer) {
	return func(d *TagDiscoverer) {
		d.cacheSize = size
	}
}

// Members implements the Discoverer interface.
func (d *TagDiscoverer) Members(t reflect.Type) ([]Member, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %v", ErrNotStruct, t)
	}

	if d.cache != nil {
		if ms, ok := d.cache.Get(t); ok {
			return ms, nil
		}
	}

	var found []Member
	d.collect(t, nil, false, options.ModifierNone, map[reflect.Type]struct{}{}, &found)
	ms, err := dominant(t, found)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		d.cache.Add(t, ms)
	}

	return ms, nil
}

func (d *TagDiscoverer) collect(
	t reflect.Type, prefix []int, promoted bool, inherited options.ModifierEnum,
	visiting map[reflect.Type]struct{}, out *[]Member,
) {
	if _, ok := visiting[t]; ok {
		return
	}
	visiting[t] = struct{}{}
	defer delete(visiting, t)

	for i := range t.NumField() {
		f := t.Field(i)
		index := append(append([]int{}, prefix...), i)

		name, mods, named := d.parseTag(f)
		mods |= inherited
		if f.Name == "_" {
			mods |= options.ModifierSynthetic
		}

		if f.Anonymous && !named && !mods.Has(options.ModifierSynthetic) {
			base := f.Type
			if base.Kind() == reflect.Ptr {
				base = base.Elem()
			}
			if base.Kind() == reflect.Struct && primitive.FromReflectType(base) == 0 {
				d.collect(base, index, true, mods, visiting, out)
				continue
			}
		}

		if !named {
			name = f.Name
		}

		*out = append(*out, Member{
			Name:      name,
			FieldName: f.Name,
			Type:      f.Type,
			Owner:     t,
			Index:     index,
			Modifiers: mods,
			Exported:  f.IsExported(),
			Promoted:  promoted,
			Tagged:    named,
		})
	}
}

// parseTag returns the tag name, the modifiers from tag options, and whether
// the tag provides an explicit name.
func (d *TagDiscoverer) parseTag(f reflect.StructField) (string, options.ModifierEnum, bool) {
	tag, ok := f.Tag.Lookup(d.tagKey)
	if !ok {
		return "", options.ModifierNone, false
	}
	if tag == "-" {
		return "", options.ModifierSynthetic, false
	}

	name, rest, _ := strings.Cut(tag, ",")
	mods := options.ModifierNone
	for _, opt := range strings.Split(rest, ",") {
		if m, ok := options.ParseModifier(opt); ok {
			mods |= m
		}
	}

	return name, mods, name != ""
}

// dominant removes members hidden by shallower members of the same name.
// Among equally deep members a tagged name wins; untagged ones are all
// dropped, as an ambiguous selector would be. Two equally deep tagged
// members fail with ErrDuplicateName.
func dominant(t reflect.Type, found []Member) ([]Member, error) {
	byName := make(map[string][]int, len(found))
	for i, m := range found {
		byName[m.Name] = append(byName[m.Name], i)
	}

	keep := make([]bool, len(found))
	for _, idx := range byName {
		if len(idx) == 1 {
			keep[idx[0]] = true
			continue
		}

		minDepth := found[idx[0]].Depth()
		for _, i := range idx[1:] {
			minDepth = min(minDepth, found[i].Depth())
		}

		var candidates []int
		for _, i := range idx {
			if found[i].Depth() == minDepth {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) == 1 {
			keep[candidates[0]] = true
			continue
		}

		var tagged []int
		for _, i := range candidates {
			if found[i].Tagged {
				tagged = append(tagged, i)
			}
		}
		switch len(tagged) {
		case 0:
		case 1:
			keep[tagged[0]] = true
		default:
			return nil, fmt.Errorf("%w: %q on %v by %s and %s",
				ErrDuplicateName, found[tagged[0]].Name, t, found[tagged[0]].FieldName, found[tagged[1]].FieldName)
		}
	}

	ms := make([]Member, 0, len(found))
	for i, m := range found {
		if keep[i] {
			ms = append(ms, m)
		}
	}

	return ms, nil
}

package formtest

import (
	"reflect"

	"form-flattener/format"
	"form-flattener/member"
	"form-flattener/node"

	"go.uber.org/zap"
)

// Configuration controls flattening. It is immutable: derive variants with
// ToBuilder.
type Configuration struct {
	policy     member.Policy
	formatters *format.Registry
	elements   node.ElementMode
	maxDepth   int
	discoverer member.Discoverer
	logger     *zap.Logger
}

var (
	// Default includes final members and excludes transient and static ones.
	Default = NewBuilder().Build()
	// ExcludeFinal excludes final members and includes transient ones.
	ExcludeFinal = NewBuilder().IncludeFinal(false).IncludeTransient(true).Build()
	// IncludeTransient excludes final members and includes transient ones.
	IncludeTransient = NewBuilder().IncludeFinal(false).IncludeTransient(true).Build()
	// IncludeStatic excludes final members and includes static ones.
	IncludeStatic = NewBuilder().IncludeFinal(false).IncludeStatic(true).Build()
)

// Policy returns the member inclusion policy.
func (c *Configuration) Policy() member.Policy { return c.policy }

// Formatters returns the formatter registry.
func (c *Configuration) Formatters() *format.Registry { return c.formatters }

// Elements returns the element classification mode.
func (c *Configuration) Elements() node.ElementMode { return c.elements }

// MaxDepth returns the deepest node flattened before failing.
func (c *Configuration) MaxDepth() int { return c.maxDepth }

// Logger returns the logger of request building.
func (c *Configuration) Logger() *zap.Logger { return c.logger }

// ToBuilder returns a builder seeded with c. Changes to the builder never
// affect c.
func (c *Configuration) ToBuilder() *Builder {
	return &Builder{
		policy:     c.policy,
		formats:    c.formatters.ToBuilder(),
		elements:   c.elements,
		maxDepth:   c.maxDepth,
		discoverer: c.discoverer,
		logger:     c.logger,
	}
}

// Builder builds a Configuration.
type Builder struct {
	policy     member.Policy
	formats    *format.Builder
	elements   node.ElementMode
	maxDepth   int
	discoverer member.Discoverer
	logger     *zap.Logger
}

// NewBuilder creates a builder of the default configuration: final members
// included, transient, static and unexported ones excluded, built-in
// formatters, declared element types, node.DefaultMaxDepth.
func NewBuilder() *Builder {
	return &Builder{
		policy:   member.DefaultPolicy(),
		formats:  format.NewBuilder(),
		maxDepth: node.DefaultMaxDepth,
	}
}

// IncludeFinal includes members tagged final; on by default.
func (b *Builder) IncludeFinal(include bool) *Builder {
	b.policy.IncludeFinal = include
	return b
}

// IncludeTransient includes members tagged transient; off by default.
func (b *Builder) IncludeTransient(include bool) *Builder {
	b.policy.IncludeTransient = include
	return b
}

// IncludeStatic includes members tagged static; off by default.
func (b *Builder) IncludeStatic(include bool) *Builder {
	b.policy.IncludeStatic = include
	return b
}

// IncludeUnexported includes unexported fields; off by default.
func (b *Builder) IncludeUnexported(include bool) *Builder {
	b.policy.IncludeUnexported = include
	return b
}

// FieldPredicate adds a predicate members must accept on top of the
// inclusion toggles. Predicates accumulate. It panics if predicate is nil.
func (b *Builder) FieldPredicate(predicate func(member.Member) bool) *Builder {
	if predicate == nil {
		panic("field predicate cannot be nil")
	}

	b.policy.Custom = member.And(b.policy.Custom, predicate)
	return b
}

// Register sets the formatter of leaves of exactly type t. It panics if t or
// f is nil.
func (b *Builder) Register(t reflect.Type, f format.Formatter) *Builder {
	b.formats.Register(t, f)
	return b
}

// RegisterFunc registers a func(T) string or func(T) (string, error) as the
// formatter of T.
func (b *Builder) RegisterFunc(fn any) error {
	return b.formats.RegisterFunc(fn)
}

// Unregister removes the formatter registered for t.
func (b *Builder) Unregister(t reflect.Type) *Builder {
	b.formats.Unregister(t)
	return b
}

// FormatterDefaults enables or disables the built-in formatters.
func (b *Builder) FormatterDefaults(enabled bool) *Builder {
	b.formats.Defaults(enabled)
	return b
}

// ClassifyElementsBy selects how container elements and interface members
// are classified.
func (b *Builder) ClassifyElementsBy(mode node.ElementMode) *Builder {
	b.elements = mode
	return b
}

// MaxDepth sets the deepest node flattened before failing. Non-positive
// values select node.DefaultMaxDepth.
func (b *Builder) MaxDepth(depth int) *Builder {
	if depth <= 0 {
		depth = node.DefaultMaxDepth
	}

	b.maxDepth = depth
	return b
}

// Logger sets the logger of request building.
func (b *Builder) Logger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// Discoverer replaces the member discoverer.
func (b *Builder) Discoverer(d member.Discoverer) *Builder {
	b.discoverer = d
	return b
}

// Build returns the configuration. The builder may keep being used.
func (b *Builder) Build() *Configuration {
	c := &Configuration{
		policy:     b.policy,
		formatters: b.formats.Build(),
		elements:   b.elements,
		maxDepth:   b.maxDepth,
		discoverer: b.discoverer,
		logger:     b.logger,
	}

	if c.discoverer == nil {
		c.discoverer = member.NewTagDiscoverer()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c
}

// Register sets fn as the formatter of leaves of type T.
func Register[T any](b *Builder, fn func(T) string) *Builder {
	format.Register(b.formats, fn)
	return b
}

// RegisterE sets the failing fn as the formatter of leaves of type T.
func RegisterE[T any](b *Builder, fn func(T) (string, error)) *Builder {
	format.RegisterE(b.formats, fn)
	return b
}

package formtest

import (
	"time"

	"form-flattener/internal/profile"
)

// LoadConfiguration builds a configuration from the YAML profile at path,
// starting from the defaults of NewBuilder.
func LoadConfiguration(path string) (*Configuration, error) {
	p, err := profile.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return NewBuilder().apply(p).Build(), nil
}

// ParseConfiguration builds a configuration from YAML profile data.
func ParseConfiguration(data []byte) (*Configuration, error) {
	b := NewBuilder()
	if err := b.ApplyProfile(data); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// ApplyProfile applies the settings of YAML profile data to the builder.
// Settings absent from the profile are left unchanged.
func (b *Builder) ApplyProfile(data []byte) error {
	p, err := profile.Parse(data)
	if err != nil {
		return err
	}

	b.apply(p)
	return nil
}

func (b *Builder) apply(p *profile.Profile) *Builder {
	if v := p.Include.Final; v != nil {
		b.IncludeFinal(*v)
	}
	if v := p.Include.Transient; v != nil {
		b.IncludeTransient(*v)
	}
	if v := p.Include.Static; v != nil {
		b.IncludeStatic(*v)
	}
	if v := p.Include.Unexported; v != nil {
		b.IncludeUnexported(*v)
	}

	if mode, ok := p.ElementMode(); ok {
		b.ClassifyElementsBy(mode)
	}

	if p.MaxDepth > 0 {
		b.MaxDepth(p.MaxDepth)
	}

	if layout, ok := p.Layout(); ok {
		Register(b, func(t time.Time) string { return t.Format(layout) })
	}

	return b
}

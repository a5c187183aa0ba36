package formtest

import (
	"form-flattener/internal/tree"
	"form-flattener/node"
)

// Flatten returns the form parameters of form. A nil cfg selects Default.
// A nil form has no parameters. Flattening is all or nothing: on error the
// returned Params are empty and the error is a *PathError or wraps
// ErrInvalidRoot.
func Flatten(form any, cfg *Configuration) (Params, error) {
	if cfg == nil {
		cfg = Default
	}

	b := tree.Builder{
		Classifier: node.Classifier{Formatters: cfg.formatters, Elements: cfg.elements},
		Policy:     cfg.policy,
		Discoverer: cfg.discoverer,
		MaxDepth:   cfg.maxDepth,
		Logger:     cfg.logger,
	}

	entries, err := b.Flatten(form)
	if err != nil {
		return Params{}, err
	}

	return newParams(entries), nil
}

// MustFlatten is like Flatten but panics on error.
func MustFlatten(form any, cfg *Configuration) Params {
	p, err := Flatten(form, cfg)
	if err != nil {
		panic(err)
	}

	return p
}

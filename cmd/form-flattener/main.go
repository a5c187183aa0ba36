// Package main provides the CLI entrypoint for form-flattener.
//
// form-flattener reads a YAML or JSON document and prints the HTML form
// parameters it flattens to, one name=value line each:
//
//	form-flattener [-elements runtime|declared] [-profile p.yaml] [-encode] [-v] [file]
//
// The document is read from stdin when file is omitted or "-".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"form-flattener/formtest"
	"form-flattener/internal/match"
	"form-flattener/node"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("form-flattener", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		elements    string
		profilePath string
		encode      bool
		verbose     bool
	)
	fs.StringVar(&elements, "elements", node.ByRuntimeType.String(), "Element classification: runtime or declared.")
	fs.StringVar(&profilePath, "profile", "", "YAML flattening profile path.")
	fs.BoolVar(&encode, "encode", false, "Print a single URL-encoded body instead of name=value lines.")
	fs.BoolVar(&verbose, "v", false, "Enable debug logs.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := zap.NewNop()
	if verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer func() { _ = logger.Sync() }()

	opts := options{
		elements:    elements,
		profilePath: profilePath,
		encode:      encode,
		logger:      logger,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "elements" {
			opts.elementsSet = true
		}
	})

	err := flattenDocument(fs.Args(), stdin, stdout, opts)
	if err != nil {
		fmt.Fprintln(stderr, "form-flattener:", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}

	return 0
}

type options struct {
	elements    string
	elementsSet bool // -elements was given explicitly
	profilePath string
	encode      bool
	logger      *zap.Logger
}

func flattenDocument(args []string, stdin io.Reader, stdout io.Writer, opts options) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file, got %d", errUsage, len(args))
	}

	cfg, err := configuration(opts)
	if err != nil {
		return err
	}

	data, err := readInput(args, stdin)
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	opts.logger.Debug("Flattening document", zap.Int("bytes", len(data)), zap.Stringer("elements", cfg.Elements()))

	params, err := formtest.Flatten(doc, cfg)
	if err != nil {
		return err
	}

	if opts.encode {
		_, err = fmt.Fprintln(stdout, params.Encode())
	} else {
		_, err = fmt.Fprint(stdout, params)
	}

	return err
}

func configuration(opts options) (*formtest.Configuration, error) {
	modes := map[string]node.ElementMode{
		node.ByDeclaredType.String(): node.ByDeclaredType,
		node.ByRuntimeType.String():  node.ByRuntimeType,
	}

	mode, ok := modes[opts.elements]
	if !ok {
		known := []string{node.ByDeclaredType.String(), node.ByRuntimeType.String()}
		if s, found := match.Suggest(opts.elements, known); found {
			return nil, fmt.Errorf("%w: unknown -elements %q, did you mean %q?", errUsage, opts.elements, s)
		}
		return nil, fmt.Errorf("%w: unknown -elements %q", errUsage, opts.elements)
	}

	b := formtest.NewBuilder().ClassifyElementsBy(mode)
	if opts.profilePath != "" {
		data, err := os.ReadFile(opts.profilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile %s: %w", opts.profilePath, err)
		}
		if err := b.ApplyProfile(data); err != nil {
			return nil, fmt.Errorf("profile %s: %w", opts.profilePath, err)
		}

		// an explicit -elements wins over the profile
		if opts.elementsSet {
			b.ClassifyElementsBy(mode)
		}
	}

	return b.Logger(opts.logger).Build(), nil
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", args[0], err)
	}

	return data, nil
}

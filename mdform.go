package mdform

import (
	"strings"

	"github.com/hgrecco/mdform/internal/scanner"
	"github.com/hgrecco/mdform/pkg/form"
	"github.com/hgrecco/mdform/pkg/render"
)

// Aliases re-exported for convenience so most callers only import the root
// package.
type (
	Field             = form.Field
	Definition        = form.Definition
	Warning           = form.Warning
	Sanitizer         = form.Sanitizer
	Formatter         = scanner.Formatter
	CollapseFormatter = scanner.CollapseFormatter
)

// DefaultFormatter emits `{{ form.<variable_name> }}` placeholders.
var DefaultFormatter Formatter = scanner.DefaultFormatter

// DefaultSanitizer is the standard label-to-identifier conversion.
var DefaultSanitizer Sanitizer = form.DefaultSanitizer

// Option configures a Parse or Preprocess call.
type Option func(*config)

type config struct {
	formatter scanner.Formatter
	collapse  scanner.CollapseFormatter
	sanitize  form.Sanitizer
	render    []render.Option
}

// WithFormatter replaces the placeholder formatter.
func WithFormatter(f Formatter) Option {
	return func(cfg *config) { cfg.formatter = f }
}

// WithCollapseFormatter replaces the markers emitted around collapse blocks.
func WithCollapseFormatter(f CollapseFormatter) Option {
	return func(cfg *config) { cfg.collapse = f }
}

// WithSanitizer replaces the label-to-variable-name conversion.
func WithSanitizer(s Sanitizer) Option {
	return func(cfg *config) { cfg.sanitize = s }
}

// WithRenderOptions forwards options to the markdown HTML conversion used
// by Parse.
func WithRenderOptions(opts ...render.Option) Option {
	return func(cfg *config) { cfg.render = append(cfg.render, opts...) }
}

// Result bundles the outputs of a parse. Text always holds the document
// with placeholder markers substituted; HTML is filled by Parse only.
type Result struct {
	Text     string
	HTML     string
	Form     *form.Definition
	Warnings []form.Warning
}

// Preprocess scans the document, replaces recognised lines with placeholder
// markers, and assembles the form definition. It does not touch the
// markdown renderer.
func Preprocess(text string, opts ...Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return preprocess(text, cfg)
}

// Parse runs Preprocess and feeds the substituted text through the markdown
// renderer, returning HTML alongside the form definition.
func Parse(text string, opts ...Option) (Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	result, err := preprocess(text, cfg)
	if err != nil {
		return Result{}, err
	}
	result.HTML = render.HTML(result.Text, cfg.render...)
	return result, nil
}

func preprocess(text string, cfg config) (Result, error) {
	scanned, err := scanner.Scan(text, scanner.Options{
		Sanitize:  cfg.sanitize,
		Formatter: cfg.formatter,
		Collapse:  cfg.collapse,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:     strings.Join(scanned.Lines, "\n"),
		Form:     scanned.Definition,
		Warnings: scanned.Warnings,
	}, nil
}

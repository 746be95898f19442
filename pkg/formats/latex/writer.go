package latex

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-cosmio/pkg/convert"
	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/registry"
	rendertemplate "github.com/goliatone/go-cosmio/pkg/render/template"
	gotemplate "github.com/goliatone/go-cosmio/pkg/render/template/gotemplate"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// Format tokens this implementation answers to.
const (
	Format      = "latex"
	FormatASCII = "ascii.latex"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Writer serializes records as LaTeX tables.
type Writer struct {
	templates rendertemplate.TemplateRenderer
}

var _ registry.Writer = (*Writer)(nil)

// NewWriter constructs the LaTeX writer applying any provided options.
func NewWriter(options ...Option) (*Writer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("latex writer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Writer{templates: renderer}, nil
}

// Write serializes the record to dest as a LaTeX table. The leading
// cosmology and name columns are never renamed; with LaTeXNames set the
// remaining columns carry their display names.
func (w *Writer) Write(ctx context.Context, cosmo *cosmology.Cosmology, dest string, opts registry.WriteOptions) (err error) {
	if ctx == nil {
		return fmt.Errorf("latex: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return err
	}

	cls, err := table.ResolveClass(opts.TableClass)
	if err != nil {
		return err
	}

	tbl, err := convert.ToTable(cosmo, cls)
	if err != nil {
		return fmt.Errorf("latex: %w", err)
	}

	if opts.LaTeXNames {
		applyDisplayNames(tbl)
	}

	f, err := registry.CreateDestination(dest, opts.Overwrite)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("latex: close %q: %w", dest, cerr)
		}
	}()

	if _, err := w.templates.RenderTemplate("templates/table.tmpl", templateData(tbl), f); err != nil {
		return fmt.Errorf("latex: render table: %w", err)
	}
	return nil
}

// ValidateFormat accepts the two tokens this writer answers to. An empty
// token selects the canonical "latex".
func ValidateFormat(format string) error {
	switch format {
	case "", Format, FormatASCII:
		return nil
	default:
		return fmt.Errorf("latex: format must be %q or %q, got %q", Format, FormatASCII, format)
	}
}

func applyDisplayNames(tbl table.Interface) {
	names := tbl.ColNames()
	if len(names) <= 2 {
		return
	}
	// First two slots hold the class identifier and name; they keep their
	// internal names regardless of renaming.
	for _, name := range names[2:] {
		if display, ok := DisplayName(name); ok {
			// Rename cannot fail here: the name came from the table itself.
			_ = tbl.RenameColumn(name, display)
		}
	}
}

func templateData(tbl table.Interface) map[string]any {
	headers := tbl.ColNames()

	rows := make([][]string, 0, tbl.NumRows())
	for r := 0; r < tbl.NumRows(); r++ {
		row := make([]string, 0, len(headers))
		for _, name := range headers {
			col, _ := tbl.Column(name)
			cell := ""
			if r < len(col.Values) {
				cell = table.FormatCell(col.Values[r], col.Format)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return map[string]any{
		"colspec": strings.Repeat("c", len(headers)),
		"headers": headers,
		"rows":    rows,
	}
}

// Package htmlfmt writes cosmology records as HTML tables under the format
// tokens "html" and "ascii.html". The format is write-only; no reader is
// registered for it.
package htmlfmt

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-cosmio/pkg/convert"
	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/registry"
	rendertemplate "github.com/goliatone/go-cosmio/pkg/render/template"
	gotemplate "github.com/goliatone/go-cosmio/pkg/render/template/gotemplate"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// Format tokens this implementation answers to.
const (
	Format      = "html"
	FormatASCII = "ascii.html"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

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

// Writer serializes records as HTML tables.
type Writer struct {
	templates rendertemplate.TemplateRenderer
}

var _ registry.Writer = (*Writer)(nil)

// NewWriter constructs the HTML writer applying any provided options.
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
			return nil, fmt.Errorf("html writer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Writer{templates: renderer}, nil
}

// Write serializes the record to dest as an HTML table. Header and cell text
// is escaped by the template engine; the caption may carry markup from the
// record metadata and is sanitized before embedding.
func (w *Writer) Write(ctx context.Context, cosmo *cosmology.Cosmology, dest string, opts registry.WriteOptions) (err error) {
	if ctx == nil {
		return fmt.Errorf("htmlfmt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	cls, err := table.ResolveClass(opts.TableClass)
	if err != nil {
		return err
	}

	tbl, err := convert.ToTable(cosmo, cls)
	if err != nil {
		return fmt.Errorf("htmlfmt: %w", err)
	}

	f, err := registry.CreateDestination(dest, opts.Overwrite)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("htmlfmt: close %q: %w", dest, cerr)
		}
	}()

	if _, err := w.templates.RenderTemplate("templates/table.tmpl", templateData(cosmo, tbl), f); err != nil {
		return fmt.Errorf("htmlfmt: render table: %w", err)
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case "", Format, FormatASCII:
		return nil
	default:
		return fmt.Errorf("htmlfmt: format must be %q or %q, got %q", Format, FormatASCII, format)
	}
}

func templateData(cosmo *cosmology.Cosmology, tbl table.Interface) map[string]any {
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

	caption := fmt.Sprintf("%s %s", cosmo.Class(), cosmo.Name())
	if meta := cosmo.Meta(); meta != nil {
		if raw, ok := meta["caption"].(string); ok {
			caption = raw
		}
	}

	return map[string]any{
		"caption": sanitizeCaption(caption),
		"headers": headers,
		"rows":    rows,
	}
}

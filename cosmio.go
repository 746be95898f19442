package cosmio

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/registry"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// WriteOption customises a single Write call.
type WriteOption func(*writeConfig)

// ReadOption customises a single ReadTable call.
type ReadOption func(*readConfig)

type writeConfig struct {
	format     string
	tableClass any
	latexNames bool
	overwrite  bool
	registry   *registry.Registry
}

type readConfig struct {
	format     string
	tableClass any
	registry   *registry.Registry
}

// WithFormat selects the format token explicitly. When omitted, the token is
// derived from the destination file extension.
func WithFormat(format string) WriteOption {
	return func(cfg *writeConfig) {
		cfg.format = strings.TrimSpace(format)
	}
}

// WithTableClass selects the intermediate tabular container. Accepts a
// table.Class (table.NewArray or table.NewPlain); anything else fails at the
// writer boundary with a descriptive type error.
func WithTableClass(cls any) WriteOption {
	return func(cfg *writeConfig) {
		cfg.tableClass = cls
	}
}

// WithLaTeXNames renames parameter columns to their LaTeX display names.
// The leading cosmology and name columns always keep their internal names.
func WithLaTeXNames(enabled bool) WriteOption {
	return func(cfg *writeConfig) {
		cfg.latexNames = enabled
	}
}

// WithOverwrite permits replacing an existing destination file.
func WithOverwrite(enabled bool) WriteOption {
	return func(cfg *writeConfig) {
		cfg.overwrite = enabled
	}
}

// WithRegistry routes the call through a custom registry instead of the
// built-in default.
func WithRegistry(reg *registry.Registry) WriteOption {
	return func(cfg *writeConfig) {
		cfg.registry = reg
	}
}

// WithReadFormat selects the format token explicitly for a read.
func WithReadFormat(format string) ReadOption {
	return func(cfg *readConfig) {
		cfg.format = strings.TrimSpace(format)
	}
}

// WithReadTableClass selects the container a read materialises into.
func WithReadTableClass(cls any) ReadOption {
	return func(cfg *readConfig) {
		cfg.tableClass = cls
	}
}

// WithReadRegistry routes the read through a custom registry.
func WithReadRegistry(reg *registry.Registry) ReadOption {
	return func(cfg *readConfig) {
		cfg.registry = reg
	}
}

// Write serializes the record to dest using the writer registered for the
// requested format token. Unknown tokens fail with a registry lookup error
// listing the registered set.
func Write(ctx context.Context, cosmo *cosmology.Cosmology, dest string, options ...WriteOption) error {
	if ctx == nil {
		return errors.New("cosmio: context is required")
	}

	cfg := writeConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	reg := cfg.registry
	if reg == nil {
		var err error
		reg, err = DefaultRegistry()
		if err != nil {
			return err
		}
	}

	format := cfg.format
	if format == "" {
		format = formatFromPath(dest)
	}

	writer, err := reg.Writer(format)
	if err != nil {
		return err
	}

	return writer.Write(ctx, cosmo, dest, registry.WriteOptions{
		Format:     format,
		TableClass: cfg.tableClass,
		LaTeXNames: cfg.latexNames,
		Overwrite:  cfg.overwrite,
	})
}

// ReadTable loads a previously written file back into a tabular container.
// Column names come back exactly as written; display names applied on write
// are not reverted.
func ReadTable(ctx context.Context, src string, options ...ReadOption) (table.Interface, error) {
	if ctx == nil {
		return nil, errors.New("cosmio: context is required")
	}

	cfg := readConfig{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	reg := cfg.registry
	if reg == nil {
		var err error
		reg, err = DefaultRegistry()
		if err != nil {
			return nil, err
		}
	}

	format := cfg.format
	if format == "" {
		format = formatFromPath(src)
	}

	reader, err := reg.Reader(format)
	if err != nil {
		return nil, err
	}

	return reader.ReadTable(ctx, src, registry.ReadOptions{
		Format:     format,
		TableClass: cfg.tableClass,
	})
}

// formatFromPath derives a format token from a filename extension. Unknown
// extensions map to themselves so the registry error names what the caller
// asked for.
func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "tex":
		return "latex"
	case "yml":
		return "yaml"
	case "htm":
		return "html"
	default:
		return ext
	}
}

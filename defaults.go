package cosmio

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-cosmio/pkg/formats/htmlfmt"
	"github.com/goliatone/go-cosmio/pkg/formats/jsonfmt"
	"github.com/goliatone/go-cosmio/pkg/formats/latex"
	"github.com/goliatone/go-cosmio/pkg/formats/yamlfmt"
	"github.com/goliatone/go-cosmio/pkg/registry"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *registry.Registry
	defaultErr      error
)

// DefaultRegistry returns the shared registry holding the built-in formats.
// It is assembled once; registration failures surface on every call so
// misconfiguration is not silently ignored.
func DefaultRegistry() (*registry.Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry()
	})
	return defaultRegistry, defaultErr
}

// NewRegistry assembles a fresh registry with all built-in formats
// registered. Callers extending the format set should start from this and
// register their own writers and readers on top.
func NewRegistry() (*registry.Registry, error) {
	reg := registry.New()

	latexWriter, err := latex.NewWriter()
	if err != nil {
		return nil, fmt.Errorf("cosmio: latex writer: %w", err)
	}
	htmlWriter, err := htmlfmt.NewWriter()
	if err != nil {
		return nil, fmt.Errorf("cosmio: html writer: %w", err)
	}

	latexReader := latex.NewReader()

	reg.MustRegisterWriter(latex.Format, latexWriter)
	reg.MustRegisterWriter(latex.FormatASCII, latexWriter)
	reg.MustRegisterReader(latex.Format, latexReader)
	reg.MustRegisterReader(latex.FormatASCII, latexReader)

	reg.MustRegisterWriter(jsonfmt.Format, jsonfmt.NewWriter())
	reg.MustRegisterReader(jsonfmt.Format, jsonfmt.NewReader())

	reg.MustRegisterWriter(yamlfmt.Format, yamlfmt.NewWriter())
	reg.MustRegisterReader(yamlfmt.Format, yamlfmt.NewReader())

	// html is write-only; reads through the registry fail with the usual
	// no-reader error.
	reg.MustRegisterWriter(htmlfmt.Format, htmlWriter)
	reg.MustRegisterWriter(htmlfmt.FormatASCII, htmlWriter)

	return reg, nil
}

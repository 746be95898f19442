package template_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-cosmio/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templates := fstest.MapFS{
		// pongo2 autoescapes by default; LaTeX output opts out with |safe.
		"row.tmpl": &fstest.MapFile{
			Data: []byte(`{{ cells|join:" & "|safe }} \\`),
		},
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templates))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf strings.Builder
	result, err := engine.RenderTemplate("row", map[string]any{
		"cells": []string{"FlatLambdaCDM", "Planck18"},
	}, &buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	want := `FlatLambdaCDM & Planck18 \\`
	if result != want {
		t.Fatalf("render result\nwant: %q\n got: %q", want, result)
	}
	if buf.String() != want {
		t.Fatalf("render writer\nwant: %q\n got: %q", want, buf.String())
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString(`{{ name }}`, map[string]any{"name": "WMAP9"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "WMAP9" {
		t.Fatalf("render string: %q", result)
	}
}

func TestEngine_TexEscapeFilter(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderString(`{{ name|texescape|safe }}`, map[string]any{"name": "m_nu & friends"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != `m\_nu \& friends` {
		t.Fatalf("texescape output: %q", result)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestEscapeTeX(t *testing.T) {
	got := gotemplate.EscapeTeX(`100% of $H_0$ {braces} ~ ^`)
	want := `100\% of \$H\_0\$ \{braces\} \textasciitilde{} \textasciicircum{}`
	if got != want {
		t.Fatalf("escape\nwant: %q\n got: %q", want, got)
	}
}

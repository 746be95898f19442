package registry_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/registry"
	"github.com/goliatone/go-cosmio/pkg/table"
)

type stubWriter struct{}

func (stubWriter) Write(context.Context, *cosmology.Cosmology, string, registry.WriteOptions) error {
	return nil
}

type stubReader struct{}

func (stubReader) ReadTable(context.Context, string, registry.ReadOptions) (table.Interface, error) {
	return table.NewArray(), nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	if err := reg.RegisterWriter("latex", stubWriter{}); err != nil {
		t.Fatalf("register writer: %v", err)
	}
	if err := reg.RegisterWriter("ascii.latex", stubWriter{}); err != nil {
		t.Fatalf("register alias: %v", err)
	}
	if err := reg.RegisterReader("latex", stubReader{}); err != nil {
		t.Fatalf("register reader: %v", err)
	}

	if _, err := reg.Writer("latex"); err != nil {
		t.Fatalf("writer lookup: %v", err)
	}
	if !reg.HasWriter("ascii.latex") || reg.HasWriter("json") {
		t.Fatal("HasWriter disagrees with registrations")
	}

	got := reg.WriterFormats()
	want := []string{"ascii.latex", "latex"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("writer formats: got %v want %v", got, want)
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	if err := reg.RegisterWriter("latex", stubWriter{}); err != nil {
		t.Fatalf("register writer: %v", err)
	}
	if err := reg.RegisterWriter("latex", stubWriter{}); err == nil {
		t.Fatal("duplicate registration must fail")
	}
}

func TestRegistry_UnknownFormat(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	reg.MustRegisterWriter("latex", stubWriter{})

	_, err := reg.Writer("unsupported")
	var unknown *registry.UnknownFormatError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownFormatError, got %v", err)
	}
	if !strings.Contains(err.Error(), "no writer defined for format") {
		t.Fatalf("unexpected message: %v", err)
	}
	if !strings.Contains(err.Error(), "latex") {
		t.Fatalf("message should list registered tokens: %v", err)
	}

	if _, err := reg.Reader("latex"); err == nil {
		t.Fatal("reader lookup must fail when only a writer exists")
	}
}

func TestCreateDestination(t *testing.T) {
	t.Parallel()

	t.Run("EmptyPath", func(t *testing.T) {
		t.Parallel()

		_, err := registry.CreateDestination("", false)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected not-found class error, got %v", err)
		}
	})

	t.Run("OverwriteProtection", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.tex")
		if err := os.WriteFile(path, []byte("existing"), 0o644); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		_, err := registry.CreateDestination(path, false)
		var overwrite *registry.OverwriteError
		if !errors.As(err, &overwrite) {
			t.Fatalf("expected *OverwriteError, got %v", err)
		}
		if !strings.Contains(err.Error(), "Overwrite: true") {
			t.Fatalf("message should reference Overwrite: true, got %v", err)
		}

		f, err := registry.CreateDestination(path, true)
		if err != nil {
			t.Fatalf("overwrite allowed: %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	t.Run("FreshFile", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "fresh.tex")
		f, err := registry.CreateDestination(path, false)
		if err != nil {
			t.Fatalf("create destination: %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
}

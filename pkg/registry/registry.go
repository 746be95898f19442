package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// WriteOptions carries the per-call instructions a writer honours.
type WriteOptions struct {
	// Format is the token the caller asked for. Writers registered under
	// several aliases validate it against the tokens they answer to.
	Format string
	// TableClass selects the intermediate container. It is validated at the
	// writer boundary with table.ResolveClass; nil selects the default.
	TableClass any
	// LaTeXNames asks table-producing writers to rename parameter columns to
	// their display names. The leading identity columns are never renamed.
	LaTeXNames bool
	// Overwrite permits replacing an existing destination file.
	Overwrite bool
}

// ReadOptions carries the per-call instructions a reader honours.
type ReadOptions struct {
	Format     string
	TableClass any
}

// Writer serializes a record to a destination path.
type Writer interface {
	Write(ctx context.Context, cosmo *cosmology.Cosmology, dest string, opts WriteOptions) error
}

// Reader loads a destination file back into a tabular container. Column
// names come back exactly as written; display names are not reverted.
type Reader interface {
	ReadTable(ctx context.Context, src string, opts ReadOptions) (table.Interface, error)
}

// Registry stores writers and readers by format token, providing discovery
// and duplication safeguards.
type Registry struct {
	mu      sync.RWMutex
	writers map[string]Writer
	readers map[string]Reader
}

// New creates an empty registry instance.
func New() *Registry {
	return &Registry{
		writers: make(map[string]Writer),
		readers: make(map[string]Reader),
	}
}

// RegisterWriter adds a writer under a format token. Duplicate tokens return
// an error; register an implementation under each alias it answers to.
func (r *Registry) RegisterWriter(format string, w Writer) error {
	if w == nil {
		return fmt.Errorf("registry: writer is required")
	}
	if format == "" {
		return fmt.Errorf("registry: format token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.writers[format]; exists {
		return fmt.Errorf("registry: writer for format %q already registered", format)
	}
	r.writers[format] = w
	return nil
}

// RegisterReader adds a reader under a format token.
func (r *Registry) RegisterReader(format string, rd Reader) error {
	if rd == nil {
		return fmt.Errorf("registry: reader is required")
	}
	if format == "" {
		return fmt.Errorf("registry: format token is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.readers[format]; exists {
		return fmt.Errorf("registry: reader for format %q already registered", format)
	}
	r.readers[format] = rd
	return nil
}

// MustRegisterWriter panics on registration failure. Useful for init-time
// wiring of the built-in formats.
func (r *Registry) MustRegisterWriter(format string, w Writer) {
	if err := r.RegisterWriter(format, w); err != nil {
		panic(err)
	}
}

// MustRegisterReader panics on registration failure.
func (r *Registry) MustRegisterReader(format string, rd Reader) {
	if err := r.RegisterReader(format, rd); err != nil {
		panic(err)
	}
}

// Writer retrieves the writer registered for a format token.
func (r *Registry) Writer(format string) (Writer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.writers[format]
	if !ok {
		return nil, &UnknownFormatError{Op: "write", Format: format, Known: r.writerTokensLocked()}
	}
	return w, nil
}

// Reader retrieves the reader registered for a format token.
func (r *Registry) Reader(format string) (Reader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rd, ok := r.readers[format]
	if !ok {
		return nil, &UnknownFormatError{Op: "read", Format: format, Known: r.readerTokensLocked()}
	}
	return rd, nil
}

// WriterFormats returns the sorted registered writer tokens.
func (r *Registry) WriterFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writerTokensLocked()
}

// ReaderFormats returns the sorted registered reader tokens.
func (r *Registry) ReaderFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.readerTokensLocked()
}

// HasWriter reports whether a writer is registered for the token.
func (r *Registry) HasWriter(format string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.writers[format]
	return ok
}

// HasReader reports whether a reader is registered for the token.
func (r *Registry) HasReader(format string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.readers[format]
	return ok
}

func (r *Registry) writerTokensLocked() []string {
	tokens := make([]string, 0, len(r.writers))
	for token := range r.writers {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func (r *Registry) readerTokensLocked() []string {
	tokens := make([]string, 0, len(r.readers))
	for token := range r.readers {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

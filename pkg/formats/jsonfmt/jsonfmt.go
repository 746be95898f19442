// Package jsonfmt serializes cosmology records as JSON documents under the
// format token "json". The document keeps parameter order, so the table
// produced on read matches the write-side layout.
package jsonfmt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/goliatone/go-cosmio/pkg/convert"
	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/registry"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// Format is the token this implementation answers to.
const Format = "json"

type document struct {
	Cosmology  string         `json:"cosmology"`
	Name       string         `json:"name"`
	Parameters []docParam     `json:"parameters"`
	Meta       map[string]any `json:"meta,omitempty"`
}

type docParam struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// Writer serializes records as JSON.
type Writer struct{}

var _ registry.Writer = (*Writer)(nil)

// NewWriter constructs the JSON writer.
func NewWriter() *Writer { return &Writer{} }

// Write serializes the record to dest, honouring the shared path and
// overwrite semantics.
func (w *Writer) Write(ctx context.Context, cosmo *cosmology.Cosmology, dest string, opts registry.WriteOptions) (err error) {
	if ctx == nil {
		return fmt.Errorf("jsonfmt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	if cosmo == nil {
		return fmt.Errorf("jsonfmt: cosmology record is required")
	}

	f, err := registry.CreateDestination(dest, opts.Overwrite)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("jsonfmt: close %q: %w", dest, cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(cosmo)); err != nil {
		return fmt.Errorf("jsonfmt: encode %q: %w", dest, err)
	}
	return nil
}

// Reader loads JSON documents back into tabular containers.
type Reader struct{}

var _ registry.Reader = (*Reader)(nil)

// NewReader constructs the JSON reader.
func NewReader() *Reader { return &Reader{} }

// ReadTable loads a JSON document and lays it out as a one-row table.
func (r *Reader) ReadTable(ctx context.Context, src string, opts registry.ReadOptions) (table.Interface, error) {
	if ctx == nil {
		return nil, fmt.Errorf("jsonfmt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateFormat(opts.Format); err != nil {
		return nil, err
	}

	cls, err := table.ResolveClass(opts.TableClass)
	if err != nil {
		return nil, err
	}

	cosmo, err := ReadCosmology(src)
	if err != nil {
		return nil, err
	}
	return convert.ToTable(cosmo, cls)
}

// ReadCosmology loads a JSON document back into a record.
func ReadCosmology(src string) (*cosmology.Cosmology, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsonfmt: decode %q: %w", src, err)
	}
	return fromDocument(doc)
}

func validateFormat(format string) error {
	if format != "" && format != Format {
		return fmt.Errorf("jsonfmt: format must be %q, got %q", Format, format)
	}
	return nil
}

func toDocument(cosmo *cosmology.Cosmology) document {
	doc := document{
		Cosmology: cosmo.Class(),
		Name:      cosmo.Name(),
		Meta:      cosmo.Meta(),
	}
	for _, p := range cosmo.Parameters() {
		doc.Parameters = append(doc.Parameters, docParam{Name: p.Name, Value: p.Value, Unit: p.Unit})
	}
	return doc
}

func fromDocument(doc document) (*cosmology.Cosmology, error) {
	params := make([]cosmology.Parameter, 0, len(doc.Parameters))
	for _, p := range doc.Parameters {
		params = append(params, cosmology.Parameter{Name: p.Name, Value: normalizeValue(p.Value), Unit: p.Unit})
	}

	var opts []cosmology.Option
	if len(doc.Meta) > 0 {
		opts = append(opts, cosmology.WithMeta(doc.Meta))
	}
	return cosmology.New(doc.Cosmology, doc.Name, params, opts...)
}

// normalizeValue lifts decoded values back into the shapes the model uses:
// numeric arrays become []float64, everything numeric becomes float64.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]float64, 0, len(val))
		for _, item := range val {
			f, ok := toFloat(item)
			if !ok {
				return v
			}
			out = append(out, f)
		}
		return out
	default:
		if f, ok := toFloat(v); ok {
			return f
		}
		return v
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

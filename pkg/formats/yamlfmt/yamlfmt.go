// Package yamlfmt serializes cosmology records as YAML documents under the
// format token "yaml".
package yamlfmt

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cosmio/pkg/convert"
	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/registry"
	"github.com/goliatone/go-cosmio/pkg/table"
)

// Format is the token this implementation answers to.
const Format = "yaml"

type document struct {
	Cosmology  string         `yaml:"cosmology"`
	Name       string         `yaml:"name"`
	Parameters []docParam     `yaml:"parameters"`
	Meta       map[string]any `yaml:"meta,omitempty"`
}

type docParam struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
	Unit  string `yaml:"unit,omitempty"`
}

// Writer serializes records as YAML.
type Writer struct{}

var _ registry.Writer = (*Writer)(nil)

// NewWriter constructs the YAML writer.
func NewWriter() *Writer { return &Writer{} }

// Write serializes the record to dest, honouring the shared path and
// overwrite semantics.
func (w *Writer) Write(ctx context.Context, cosmo *cosmology.Cosmology, dest string, opts registry.WriteOptions) (err error) {
	if ctx == nil {
		return fmt.Errorf("yamlfmt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	if cosmo == nil {
		return fmt.Errorf("yamlfmt: cosmology record is required")
	}

	f, err := registry.CreateDestination(dest, opts.Overwrite)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("yamlfmt: close %q: %w", dest, cerr)
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(cosmo)); err != nil {
		return fmt.Errorf("yamlfmt: encode %q: %w", dest, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yamlfmt: flush %q: %w", dest, err)
	}
	return nil
}

// Reader loads YAML documents back into tabular containers.
type Reader struct{}

var _ registry.Reader = (*Reader)(nil)

// NewReader constructs the YAML reader.
func NewReader() *Reader { return &Reader{} }

// ReadTable loads a YAML document and lays it out as a one-row table.
func (r *Reader) ReadTable(ctx context.Context, src string, opts registry.ReadOptions) (table.Interface, error) {
	if ctx == nil {
		return nil, fmt.Errorf("yamlfmt: context is required")
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

// ReadCosmology loads a YAML document back into a record.
func ReadCosmology(src string) (*cosmology.Cosmology, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlfmt: decode %q: %w", src, err)
	}
	return fromDocument(doc)
}

func validateFormat(format string) error {
	if format != "" && format != Format {
		return fmt.Errorf("yamlfmt: format must be %q, got %q", Format, format)
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

package cosmology

import (
	"fmt"
	"strings"
)

// Parameter is a single named model parameter. Value is either a scalar
// float64 or a []float64 array; Unit is a presentation hint.
type Parameter struct {
	Name  string
	Value any
	Unit  string
}

// Cosmology is an immutable record: a model class identifier, an instance
// name, and the ordered parameters that define it. Construct one with New or
// with a convenience constructor such as FlatLambdaCDM.
type Cosmology struct {
	class  string
	name   string
	params []Parameter
	meta   map[string]any
}

// New builds a record from a class identifier, a name, and ordered
// parameters. Duplicate parameter names are rejected.
func New(class, name string, params []Parameter, opts ...Option) (*Cosmology, error) {
	if strings.TrimSpace(class) == "" {
		return nil, fmt.Errorf("cosmology: class identifier is required")
	}

	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("cosmology: parameter name is required")
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("cosmology: parameter %q declared twice", p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	c := &Cosmology{
		class:  class,
		name:   name,
		params: append([]Parameter(nil), params...),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Option customises record construction.
type Option func(*Cosmology)

// WithMeta attaches free-form metadata to the record.
func WithMeta(meta map[string]any) Option {
	return func(c *Cosmology) {
		if len(meta) == 0 {
			return
		}
		if c.meta == nil {
			c.meta = make(map[string]any, len(meta))
		}
		for k, v := range meta {
			c.meta[k] = v
		}
	}
}

// Class returns the model class identifier, e.g. "FlatLambdaCDM".
func (c *Cosmology) Class() string { return c.class }

// Name returns the instance name, e.g. "Planck18".
func (c *Cosmology) Name() string { return c.name }

// Parameters returns the ordered parameters as a copy.
func (c *Cosmology) Parameters() []Parameter {
	return append([]Parameter(nil), c.params...)
}

// Parameter looks up a parameter by name.
func (c *Cosmology) Parameter(name string) (Parameter, bool) {
	for _, p := range c.params {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Meta returns a copy of the record metadata.
func (c *Cosmology) Meta() map[string]any {
	if len(c.meta) == 0 {
		return nil
	}
	out := make(map[string]any, len(c.meta))
	for k, v := range c.meta {
		out[k] = v
	}
	return out
}

// FlatParams carries the optional parameters accepted by FlatLambdaCDM.
// Zero values mean "not set" and are omitted from the record, except MNu
// where an explicit empty slice is still omitted.
type FlatParams struct {
	Tcmb0 float64
	Neff  float64
	MNu   []float64
	Ob0   float64
}

// FlatLambdaCDM builds a flat Lambda-CDM record from the Hubble constant
// (km / (Mpc s)) and the present-day matter density.
func FlatLambdaCDM(name string, h0, om0 float64, extra FlatParams, opts ...Option) (*Cosmology, error) {
	params := []Parameter{
		{Name: "H0", Value: h0, Unit: "km / (Mpc s)"},
		{Name: "Om0", Value: om0},
	}
	if extra.Tcmb0 != 0 {
		params = append(params, Parameter{Name: "Tcmb0", Value: extra.Tcmb0, Unit: "K"})
	}
	if extra.Neff != 0 {
		params = append(params, Parameter{Name: "Neff", Value: extra.Neff})
	}
	if len(extra.MNu) > 0 {
		params = append(params, Parameter{Name: "m_nu", Value: append([]float64(nil), extra.MNu...), Unit: "eV"})
	}
	if extra.Ob0 != 0 {
		params = append(params, Parameter{Name: "Ob0", Value: extra.Ob0})
	}
	return New("FlatLambdaCDM", name, params, opts...)
}

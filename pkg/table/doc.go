// Package table provides the in-memory tabular containers used as the
// intermediate representation between cosmology records and serialized
// output. Two container kinds are available behind one capability
// interface: an array-aware container that preserves array-valued cells
// and units, and a plain container that flattens every cell to text.
package table

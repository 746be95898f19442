// Package cosmology defines the record type serialized by this module: a
// named cosmological model carrying an ordered set of parameters. The
// package holds only the model surface serialization needs; it does not
// compute distances or expansion history.
package cosmology

// Package template defines the rendering seam format writers depend on,
// keeping the concrete engine swappable. The gotemplate subpackage provides
// the built-in pongo2-backed implementation.
package template

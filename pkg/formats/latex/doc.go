// Package latex writes cosmology records as LaTeX tables and reads them
// back. It answers to the format tokens "latex" and "ascii.latex", which
// select the same implementation.
package latex

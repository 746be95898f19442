// Package cosmio serializes cosmology records to and from tabular file
// formats. Format dispatch is string-keyed through an explicit registry;
// the built-in formats are latex (alias ascii.latex), json, yaml, and html
// (alias ascii.html, write-only).
//
// The simplest entry points are Write and ReadTable:
//
//	err := cosmio.Write(ctx, cosmology.Planck18(), "planck18.tex",
//		cosmio.WithFormat("latex"),
//		cosmio.WithLaTeXNames(true),
//	)
package cosmio

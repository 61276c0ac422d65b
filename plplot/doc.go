// Package plplot renders a set of landscapes to a PNG raster, one colored
// line per landscape: a cartesian chart with one line series per
// landscape, cycling through a small color palette.
//
// Uses gonum.org/v1/plot, the Go ecosystem's standard plotting library,
// rather than a hand-rolled rasterizer.
package plplot

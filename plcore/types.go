package plcore

import (
	"errors"
	"math"
)

// Sentinel errors shared across plandscape packages.
var (
	// ErrNonPositiveK indicates that K (the number of landscapes requested)
	// was not a positive integer.
	ErrNonPositiveK = errors.New("plcore: K must be a positive integer")
)

// Tolerance is the absolute epsilon used for all near-equality comparisons
// on coordinates: polyline sample de-duplication, zero-length interval
// rejection, and the parallel-segment and behind-the-sweep tests applied to
// crossings. The original Rust implementation
// worked in f32 and used a comparable-scale EPSILON; plandscape computes in
// float64 throughout but keeps the same epsilon so literal fixtures ported
// from that implementation still compare equal.
const Tolerance = 1e-6

// Point is a 2-D coordinate. It is the vertex type for tent geometry,
// event values, and polyline samples.
type Point struct {
	X float64
	Y float64
}

// ApproxEqual reports whether p and q are equal within Tolerance on both
// axes.
func (p Point) ApproxEqual(q Point) bool {
	return math.Abs(p.X-q.X) <= Tolerance && math.Abs(p.Y-q.Y) <= Tolerance
}

// Interval is a persistence pair (Birth, Death) with Birth <= Death.
// Ordering within a slice of Interval is never significant.
type Interval struct {
	Birth float64
	Death float64
}

// Len returns Death - Birth, the "persistence" of the interval.
func (iv Interval) Len() float64 {
	return iv.Death - iv.Birth
}

// IsFinite reports whether both endpoints are finite, non-NaN values.
func (iv Interval) IsFinite() bool {
	return !math.IsInf(iv.Birth, 0) && !math.IsInf(iv.Death, 0) &&
		!math.IsNaN(iv.Birth) && !math.IsNaN(iv.Death)
}

// IsDegenerate reports whether the interval's length is within Tolerance
// of zero, i.e. it induces a tent too thin to ever surface above y=0.
func (iv Interval) IsDegenerate() bool {
	return math.Abs(iv.Len()) <= Tolerance
}

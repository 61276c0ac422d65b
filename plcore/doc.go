// Package plcore defines the shared geometric primitives used across the
// plandscape module: Point, Interval, and the numeric tolerance policy
// that Validate and the landscape sweep rely on for near-equality tests at
// triangle endpoints and intersections.
//
// Types:
//
//	Point    — a 2-D coordinate (x, y), used for tent vertices, event
//	           values, and polyline samples.
//	Interval — a birth/death persistence pair (b, d) with b <= d.
//
// Validation:
//
//	Validate drops intervals that cannot induce a tent at all: non-finite
//	endpoints, or |death - birth| <= Tolerance. It never mutates its input
//	slice; it returns a new slice plus a count of intervals dropped.
//
// Errors:
//
//	ErrNonPositiveK - K must be a positive integer.
//
// Thanks for choosing plandscape! We aim to keep the sweep small, the
// tolerances explicit, and the package boundaries narrow enough that each
// one is independently testable.
package plcore

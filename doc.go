// Package plandscape computes persistence landscapes from a set of
// persistence intervals (birth–death pairs).
//
// A persistence interval (b, d) induces a tent function whose graph is an
// isoceles triangle with base on the x-axis from b to d; the k-th
// landscape λ_k(t) is the k-th largest tent value at t. This module
// computes the first K landscapes in a single plane sweep.
//
// Everything lives under focused subpackages:
//
//	plcore/    — Interval/Point primitives, validation, numeric tolerance
//	prefilter/ — discards intervals that can never reach the top K
//	landscape/ — the plane-sweep Generate that produces the K polylines
//	plnorm/    — the L² norm of a set of landscapes
//	plparse/   — the birth/death text input format
//	plcsv/     — CSV serialization of landscapes
//	plplot/    — optional PNG rendering of landscapes
//	cmd/plandscape/ — the CLI tying the above together
//
//	go get github.com/arclake/plandscape
package plandscape

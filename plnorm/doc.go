// Package plnorm computes the L² norm of a set of landscapes: the sum,
// across all K landscapes, of the (unsigned) area under each polyline.
//
// Each consecutive pair of samples in a polyline is treated as a
// trapezoid-free triangle approximation (|Δy|·|Δx|/2) rather than the true
// trapezoid area — this deliberately undercounts segments whose endpoints
// have equal height, a known quirk of this norm that is preserved as-is
// since the norm is a secondary diagnostic, not the landscapes themselves.
package plnorm

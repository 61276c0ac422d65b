// Package landscape implements the plane-sweep algorithm that computes the
// first K persistence landscapes of a set of tent ("mountain") functions in
// a single pass.
//
// Overview:
//
//   - Each finite interval (b, d) induces a tent Λ(t) = max(0, min(t-b, d-t)),
//     an isoceles triangle with slope exactly ±1 on base [b, d] and apex at
//     ((b+d)/2, (d-b)/2).
//   - Generate sweeps a vertical line left to right, maintaining a Status:
//     the currently-alive tents ordered top-to-bottom by height under the
//     sweep line.
//   - Four event kinds drive the sweep: Up (a tent is born at the bottom
//     of the Status), Turn (a tent's apex — its slope flips from rising to
//     falling), Down (a tent dies at the bottom of the Status), and Cross
//     (two adjacent tents of opposite slope meet and swap order).
//   - At shared x, events fire in priority order Cross < Down < Up < Turn.
//   - Emitting a sample into Status slot j appends a break-point to λ_{j+1}.
//
// Complexity: O(n log n + c log c) where n is the number of input tents and
// c is the number of pairwise crossings actually discovered (never more
// than the number of adjacent-pair transitions the sweep performs, since
// crosses are only checked between tents that just became adjacent).
//
// Numeric policy: every coordinate comparison — polyline sample
// de-duplication, cross-vs-sweep-x staleness checks, the colinear/parallel
// test in segment intersection — uses plcore.Tolerance as an absolute
// epsilon, since exact equality on swept floating-point coordinates is
// never reliable.
//
// Failure semantics: Generate never panics. A broken invariant (a Down
// event whose mountain is not at the bottom of Status, a polyline append
// whose x falls more than plcore.Tolerance behind the previous sample, an
// unrecognized event kind)
// is returned as a sentinel error wrapped with fmt.Errorf("%w: ...", ...) —
// the caller (cmd/plandscape) decides whether that is fatal to its process.
// A sample at the same x as the previous one but with a different y is
// appended without error; only a backwards step in x is rejected.
package landscape

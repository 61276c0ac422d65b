// Package plcsv writes landscapes to CSV: one "x,y" record per sample,
// with a blank record separating consecutive polylines, in λ_1, λ_2, …,
// λ_K order.
//
// Uses encoding/csv directly rather than a third-party CSV library: the
// standard-library writer already covers this format exactly, so wrapping
// it would add a dependency with nothing to justify it.
package plcsv

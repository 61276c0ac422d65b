// Package plparse turns the tool's plain-text input format into
// plcore.Interval values.
//
// Format: one whitespace-separated "birth death" pair per line. Lines that
// are empty (after trimming) or that contain the literal token "inf" are
// dropped before parsing — an interval with an infinite endpoint is
// meaningless to the sweep and is never handed to it.
package plparse

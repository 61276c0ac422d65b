package plcore

// Validate drops intervals that can never induce a tent contributing to any
// landscape: non-finite endpoints, or a length within Tolerance of zero.
// It returns the retained intervals (in input order, never mutating the
// input slice) and the number of intervals dropped.
func Validate(intervals []Interval) (kept []Interval, dropped int) {
	kept = make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsFinite() || iv.IsDegenerate() {
			dropped++
			continue
		}
		kept = append(kept, iv)
	}

	return kept, dropped
}

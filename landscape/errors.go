package landscape

import "errors"

// Sentinel errors returned (always wrapped with fmt.Errorf("%w: ...", ...))
// when the sweep detects a broken invariant. None of these are expected to
// occur for well-formed input; they exist so a caller can distinguish a
// genuine algorithmic bug from an ordinary error.
var (
	// ErrDownNotAtBottom is returned when a Down event fires for a mountain
	// that Status does not currently hold at its bottom slot.
	ErrDownNotAtBottom = errors.New("landscape: Down event fired for a mountain not at the bottom of status")

	// ErrCrossNotAdjacent is returned when a Cross event's two mountains are
	// no longer adjacent in Status by the time it is handled.
	ErrCrossNotAdjacent = errors.New("landscape: Cross event fired for mountains that are not adjacent in status")

	// ErrNonMonotonicSample is returned when appending a sample to a
	// landscape polyline would move its x coordinate backwards.
	ErrNonMonotonicSample = errors.New("landscape: polyline sample would violate strictly increasing x")

	// ErrUnknownEventKind is returned when the sweep pops an event whose
	// kind it does not recognize; this can only happen if the event heaps
	// are corrupted by a bug elsewhere in the package.
	ErrUnknownEventKind = errors.New("landscape: unrecognized event kind")
)

package landscape

import (
	"container/heap"
	"fmt"

	"github.com/arclake/plandscape/plcore"
)

// Generate computes the first K persistence landscapes of intervals via a
// single plane sweep. The returned slice always has length K; unreached
// landscapes (more were requested than the input ever supports) come back
// as empty (nil) polylines, not an error.
//
// intervals is taken as already validated (see plcore.Validate) — Generate
// does not itself drop non-finite or degenerate intervals, it assumes its
// caller already has.
func Generate(intervals []plcore.Interval, k int) ([]Polyline, error) {
	if k <= 0 {
		return nil, plcore.ErrNonPositiveK
	}

	landscapes := make([]Polyline, k)
	if len(intervals) == 0 {
		return landscapes, nil
	}

	s := &state{
		mountains:  buildMountains(intervals),
		landscapes: landscapes,
		k:          k,
	}
	s.pushInitialEvents()
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.landscapes, nil
}

// state is the sweep's call-local runtime: the per-mountain vertex data,
// the current Status ordering, the two event queues, and the output
// polylines being built. One state is constructed per Generate call; none
// of this is package-level mutable state.
type state struct {
	mountains  []*mountain
	status     []int // ids, top (index 0) to bottom
	events     eventQueue
	crosses    eventQueue
	landscapes []Polyline
	k          int
}

func (s *state) pushInitialEvents() {
	s.events = make(eventQueue, 0, 3*len(s.mountains))
	for _, m := range s.mountains {
		s.events = append(s.events,
			event{x: m.up.X, y: m.up.Y, kind: upKind, id: m.id},
			event{x: m.peak.X, y: m.peak.Y, kind: turnKind, id: m.id},
			event{x: m.down.X, y: m.down.Y, kind: downKind, id: m.id},
		)
	}
	heap.Init(&s.events)
}

// run drains the static event queue and the dynamic cross queue in
// combined (x, kind) priority order until both are empty.
func (s *state) run() error {
	for s.events.Len() > 0 || s.crosses.Len() > 0 {
		ev := s.popNext()

		var err error
		switch ev.kind {
		case upKind:
			err = s.handleUp(ev)
		case turnKind:
			err = s.handleTurn(ev)
		case downKind:
			err = s.handleDown(ev)
		case crossKind:
			err = s.handleCross(ev)
		default:
			err = fmt.Errorf("%w: %d", ErrUnknownEventKind, ev.kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// popNext returns the globally-next event across the static events queue
// and the dynamic crosses queue. Crosses live in their own queue rather
// than the static one so that a Cross — discovered mid-handler, usually
// for an x at or only slightly ahead of the current sweep position — is
// always resolved by a dedicated drain step rather than threading back
// through the same heap an Up/Turn/Down was just popped from.
func (s *state) popNext() event {
	switch {
	case s.events.Len() == 0:
		return heap.Pop(&s.crosses).(event)
	case s.crosses.Len() == 0:
		return heap.Pop(&s.events).(event)
	case eventLess(s.crosses[0], s.events[0]):
		return heap.Pop(&s.crosses).(event)
	default:
		return heap.Pop(&s.events).(event)
	}
}

func (s *state) appendSample(slot int, pt plcore.Point) error {
	if slot < 0 || slot >= s.k {
		return nil
	}
	if err := s.landscapes[slot].append(pt); err != nil {
		return fmt.Errorf("%w: slot %d, point (%g,%g)", err, slot, pt.X, pt.Y)
	}
	return nil
}

func (s *state) handleUp(ev event) error {
	m := s.mountains[ev.id]
	s.status = append(s.status, ev.id)
	m.position = len(s.status) - 1

	if err := s.appendSample(m.position, plcore.Point{X: ev.x, Y: ev.y}); err != nil {
		return err
	}

	if m.position > 0 {
		s.tryCross(ev.id, s.status[m.position-1], ev.x)
	}
	return nil
}

func (s *state) handleTurn(ev event) error {
	m := s.mountains[ev.id]
	m.slopeRising = false

	if err := s.appendSample(m.position, plcore.Point{X: ev.x, Y: ev.y}); err != nil {
		return err
	}

	if m.position < len(s.status)-1 {
		s.tryCross(ev.id, s.status[m.position+1], ev.x)
	}
	return nil
}

func (s *state) handleDown(ev event) error {
	m := s.mountains[ev.id]
	if m.position != len(s.status)-1 {
		return fmt.Errorf("%w: mountain %d at position %d, status size %d",
			ErrDownNotAtBottom, ev.id, m.position, len(s.status))
	}

	if err := s.appendSample(m.position, plcore.Point{X: ev.x, Y: ev.y}); err != nil {
		return err
	}

	s.status = s.status[:len(s.status)-1]
	m.position = positionDead
	return nil
}

func (s *state) handleCross(ev event) error {
	m1, m2 := s.mountains[ev.id], s.mountains[ev.otherID]
	if m1.position == positionDead || m2.position == positionDead {
		return nil // stale: one side already died before this cross drained
	}
	if m1.slopeRising == m2.slopeRising {
		return nil // spurious: same direction, no longer a real crossing
	}

	var lower, upper *mountain // lower: rising; upper: falling (pre-swap)
	if m1.slopeRising {
		lower, upper = m1, m2
	} else {
		lower, upper = m2, m1
	}

	if upper.position+1 != lower.position {
		return fmt.Errorf("%w: mountains %d (pos %d) and %d (pos %d)",
			ErrCrossNotAdjacent, upper.id, upper.position, lower.id, lower.position)
	}

	pt := plcore.Point{X: ev.x, Y: ev.y}
	if err := s.appendSample(lower.position, pt); err != nil {
		return err
	}
	if err := s.appendSample(upper.position, pt); err != nil {
		return err
	}

	i, j := upper.position, lower.position // i = j-1
	s.status[i], s.status[j] = s.status[j], s.status[i]
	lower.position, upper.position = i, j // rising now above (new-upper), falling now below (new-lower)

	if i > 0 {
		s.tryCross(lower.id, s.status[i-1], ev.x)
	}
	if j < len(s.status)-1 {
		s.tryCross(upper.id, s.status[j+1], ev.x)
	}
	return nil
}

// tryCross checks whether the two (now-adjacent) mountains id1 and id2
// cross ahead of the sweep and, if so, schedules a Cross event for it.
// Same-direction pairs can never cross and are skipped before doing any
// geometry.
func (s *state) tryCross(id1, id2 int, sweepX float64) {
	m1, m2 := s.mountains[id1], s.mountains[id2]
	if m1.slopeRising == m2.slopeRising {
		return
	}

	a1, a2 := m1.activeSegment()
	b1, b2 := m2.activeSegment()
	pt, ok := intersectSegments(a1, a2, b1, b2)
	if !ok {
		return
	}

	// Clamp so floating-point drift can never schedule a Cross strictly
	// after either mountain's own Down.
	clampedX := pt.X
	if m1.down.X < clampedX {
		clampedX = m1.down.X
	}
	if m2.down.X < clampedX {
		clampedX = m2.down.X
	}
	if clampedX != pt.X {
		pt = plcore.Point{X: clampedX, Y: m1.yAt(clampedX)}
	}

	if clampedX < sweepX-plcore.Tolerance {
		return // intersection falls behind the sweep line: stale, discard
	}

	heap.Push(&s.crosses, event{x: pt.X, y: pt.Y, kind: crossKind, id: id1, otherID: id2})
}

package landscape

import "github.com/arclake/plandscape/plcore"

// Polyline is one landscape λ_j as a sequence of (x, y) break points: linear
// interpolation between consecutive points reconstructs λ_j everywhere.
type Polyline []plcore.Point

// append adds pt to the polyline, collapsing an exact repeat of the last
// point (ApproxEqual within plcore.Tolerance) and rejecting any point whose
// x would move strictly backwards relative to the last one already present.
func (p *Polyline) append(pt plcore.Point) error {
	n := len(*p)
	if n == 0 {
		*p = append(*p, pt)
		return nil
	}
	last := (*p)[n-1]
	if last.ApproxEqual(pt) {
		return nil
	}
	if pt.X < last.X-plcore.Tolerance {
		return ErrNonMonotonicSample
	}
	*p = append(*p, pt)
	return nil
}

// the two sentinel slot states a mountain's position can hold outside of
// its live range in Status.
const (
	positionUnset = -1 // never yet inserted into status
	positionDead  = -2 // removed from status by a Down event
)

// mountain is the runtime state of one input interval's tent function
// during the sweep: its three defining vertices (up, peak, down), whether
// its active half is still rising or has turned to falling, and its
// current slot in Status (or one of the sentinel states above).
type mountain struct {
	id          int
	up          plcore.Point
	peak        plcore.Point
	down        plcore.Point
	slopeRising bool
	position    int
}

// activeSegment returns the two endpoints of the half of the tent the
// sweep line is currently passing through: (up, peak) while rising,
// (peak, down) after the Turn.
func (m *mountain) activeSegment() (a, b plcore.Point) {
	if m.slopeRising {
		return m.up, m.peak
	}
	return m.peak, m.down
}

// yAt evaluates the active segment's line (slope exactly ±1, since every
// tent is an isoceles triangle) at x. Used only to recompute a crossing
// point's y after clamping its x.
func (m *mountain) yAt(x float64) float64 {
	if m.slopeRising {
		return x - m.up.X
	}
	return m.down.X - x
}

func buildMountains(intervals []plcore.Interval) []*mountain {
	mountains := make([]*mountain, len(intervals))
	for i, iv := range intervals {
		half := iv.Len() / 2
		mountains[i] = &mountain{
			id:          i,
			up:          plcore.Point{X: iv.Birth, Y: 0},
			peak:        plcore.Point{X: iv.Birth + half, Y: half},
			down:        plcore.Point{X: iv.Death, Y: 0},
			slopeRising: true,
			position:    positionUnset,
		}
	}
	return mountains
}

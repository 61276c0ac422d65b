package landscape

import (
	"math"

	"github.com/arclake/plandscape/plcore"
)

// intersectSegments returns the single proper intersection point of segment
// (p1,p2) and segment (p3,p4), if one exists. Parallel segments — including
// the colinear/overlapping case — are reported as no intersection: a tent's
// slope is always exactly ±1, so two tents can only ever be parallel when
// both are rising or both are falling, a configuration Cross never tests
// (see tryCross). t and u are the intersection's segment parameters and
// must both fall in [0,1] (with plcore.Tolerance slack for points landing
// on an endpoint, e.g. two tents sharing a birth or a death) for the
// intersection to be proper.
func intersectSegments(p1, p2, p3, p4 plcore.Point) (plcore.Point, bool) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y

	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) <= plcore.Tolerance {
		return plcore.Point{}, false
	}

	diffX, diffY := p3.X-p1.X, p3.Y-p1.Y
	t := (diffX*d2y - diffY*d2x) / denom
	u := (diffX*d1y - diffY*d1x) / denom

	const slack = plcore.Tolerance
	if t < -slack || t > 1+slack || u < -slack || u > 1+slack {
		return plcore.Point{}, false
	}

	return plcore.Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}

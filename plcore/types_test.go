package plcore_test

import (
	"math"
	"testing"

	"github.com/arclake/plandscape/plcore"
)

func TestPoint_ApproxEqual(t *testing.T) {
	a := plcore.Point{X: 1.0, Y: 2.0}
	b := plcore.Point{X: 1.0 + plcore.Tolerance/2, Y: 2.0}
	if !a.ApproxEqual(b) {
		t.Errorf("expected %v ~= %v within tolerance", a, b)
	}

	c := plcore.Point{X: 1.0 + plcore.Tolerance*10, Y: 2.0}
	if a.ApproxEqual(c) {
		t.Errorf("expected %v != %v outside tolerance", a, c)
	}
}

func TestInterval_Len(t *testing.T) {
	iv := plcore.Interval{Birth: 1, Death: 4}
	if got, want := iv.Len(), 3.0; got != want {
		t.Errorf("Len() = %v; want %v", got, want)
	}
}

func TestInterval_IsFinite(t *testing.T) {
	cases := []struct {
		name string
		iv   plcore.Interval
		want bool
	}{
		{"finite", plcore.Interval{Birth: 0, Death: 1}, true},
		{"inf death", plcore.Interval{Birth: 0, Death: math.Inf(1)}, false},
		{"inf birth", plcore.Interval{Birth: math.Inf(-1), Death: 1}, false},
		{"nan", plcore.Interval{Birth: math.NaN(), Death: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.iv.IsFinite(); got != tc.want {
				t.Errorf("IsFinite() = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestInterval_IsDegenerate(t *testing.T) {
	if !(plcore.Interval{Birth: 1, Death: 1}).IsDegenerate() {
		t.Errorf("expected zero-length interval to be degenerate")
	}
	if (plcore.Interval{Birth: 1, Death: 1 + 100*plcore.Tolerance}).IsDegenerate() {
		t.Errorf("expected well-separated interval to not be degenerate")
	}
}

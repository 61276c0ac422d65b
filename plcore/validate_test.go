package plcore_test

import (
	"math"
	"testing"

	"github.com/arclake/plandscape/plcore"
)

func TestValidate_DropsNonFiniteAndDegenerate(t *testing.T) {
	in := []plcore.Interval{
		{Birth: 0, Death: 6},
		{Birth: 1, Death: math.Inf(1)},
		{Birth: 2, Death: 2},
		{Birth: math.NaN(), Death: 3},
		{Birth: 4, Death: 9},
	}

	kept, dropped := plcore.Validate(in)

	if dropped != 3 {
		t.Fatalf("dropped = %d; want 3", dropped)
	}
	want := []plcore.Interval{{Birth: 0, Death: 6}, {Birth: 4, Death: 9}}
	if len(kept) != len(want) {
		t.Fatalf("kept = %v; want %v", kept, want)
	}
	for i := range want {
		if kept[i] != want[i] {
			t.Errorf("kept[%d] = %v; want %v", i, kept[i], want[i])
		}
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	kept, dropped := plcore.Validate(nil)
	if len(kept) != 0 || dropped != 0 {
		t.Fatalf("expected empty result for empty input, got kept=%v dropped=%d", kept, dropped)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	in := []plcore.Interval{{Birth: 0, Death: 1}, {Birth: 1, Death: 1}}
	snapshot := append([]plcore.Interval(nil), in...)
	_, _ = plcore.Validate(in)
	for i := range in {
		if in[i] != snapshot[i] {
			t.Fatalf("Validate mutated its input at index %d", i)
		}
	}
}

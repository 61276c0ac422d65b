package plnorm_test

import (
	"math"
	"testing"

	"github.com/arclake/plandscape/landscape"
	"github.com/arclake/plandscape/plcore"
	"github.com/arclake/plandscape/plnorm"
	"github.com/stretchr/testify/require"
)

func TestL2Norm_SingleTriangle(t *testing.T) {
	lambda := landscape.Polyline{
		{X: 0, Y: 0},
		{X: 2, Y: 2},
		{X: 4, Y: 0},
	}
	got := plnorm.L2Norm([]landscape.Polyline{lambda})
	// segment 1: |2-0|*|2-0|/2 = 2; segment 2: |0-2|*|4-2|/2 = 2; total 4.
	require.InDelta(t, 4.0, got, 1e-9)
}

func TestL2Norm_EmptyLandscapes(t *testing.T) {
	require.Equal(t, 0.0, plnorm.L2Norm(nil))
	require.Equal(t, 0.0, plnorm.L2Norm([]landscape.Polyline{{}, {{X: 1, Y: 0}}}))
}

func TestL2Norm_NonIncreasingAcrossSlots(t *testing.T) {
	intervals := []plcore.Interval{{Birth: 0, Death: 6}, {Birth: 1, Death: 3}, {Birth: 2, Death: 7}}
	got, err := landscape.Generate(intervals, 4)
	require.NoError(t, err)

	prev := math.MaxFloat64
	for j, lambda := range got {
		norm := plnorm.L2Norm([]landscape.Polyline{lambda})
		require.LessOrEqualf(t, norm, prev+1e-9, "λ%d norm %g exceeds previous %g", j+1, norm, prev)
		prev = norm
	}
}

package plnorm

import (
	"math"

	"github.com/arclake/plandscape/landscape"
)

// segmentArea reproduces area_under_line_segment(a, b): |Δy|*|Δx|/2.
func segmentArea(a, b [2]float64) float64 {
	height := math.Abs(a[1] - b[1])
	base := math.Abs(a[0] - b[0])
	return (height * base) / 2
}

// landscapeNorm sums segmentArea across every consecutive pair of samples
// in one polyline.
func landscapeNorm(lambda landscape.Polyline) float64 {
	var sum float64
	for i := 1; i < len(lambda); i++ {
		a := [2]float64{lambda[i-1].X, lambda[i-1].Y}
		b := [2]float64{lambda[i].X, lambda[i].Y}
		sum += segmentArea(a, b)
	}
	return sum
}

// L2Norm sums landscapeNorm across every landscape.
func L2Norm(landscapes []landscape.Polyline) float64 {
	var sum float64
	for _, lambda := range landscapes {
		sum += landscapeNorm(lambda)
	}
	return sum
}

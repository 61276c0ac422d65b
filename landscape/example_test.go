package landscape_test

import (
	"fmt"

	"github.com/arclake/plandscape/landscape"
	"github.com/arclake/plandscape/plcore"
)

// ExampleGenerate computes λ_1 for a single tent: an isoceles triangle with
// apex at the interval's midpoint.
func ExampleGenerate() {
	intervals := []plcore.Interval{{Birth: 0, Death: 4}}
	lambdas, err := landscape.Generate(intervals, 1)
	if err != nil {
		panic(err)
	}
	for _, p := range lambdas[0] {
		fmt.Printf("(%g,%g) ", p.X, p.Y)
	}
	fmt.Println()
	// Output: (0,0) (2,2) (4,0)
}

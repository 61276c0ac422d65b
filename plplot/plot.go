package plplot

import (
	"fmt"

	"github.com/arclake/plandscape/landscape"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Save renders landscapes to a PNG at path, widthPx by heightPx, one
// colored line per landscape in λ_1, λ_2, … order. Empty landscapes are
// skipped; if every landscape is empty, Save still produces a blank
// chart rather than erroring, since an empty result is a valid outcome
// (see landscape.Generate's empty-input contract).
func Save(path string, landscapes []landscape.Polyline, widthPx, heightPx int) error {
	p := plot.New()
	p.Title.Text = "Persistence landscapes"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "λ(t)"

	for j, lambda := range landscapes {
		if len(lambda) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(lambda))
		for i, s := range lambda {
			pts[i].X = s.X
			pts[i].Y = s.Y
		}
		name := fmt.Sprintf("λ%d", j+1)
		if err := plotutil.AddLines(p, name, pts); err != nil {
			return fmt.Errorf("plplot: adding %s: %w", name, err)
		}
	}

	width := vg.Length(widthPx) * vg.Inch / 96
	height := vg.Length(heightPx) * vg.Inch / 96
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("plplot: saving %s: %w", path, err)
	}
	return nil
}

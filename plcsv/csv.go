package plcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arclake/plandscape/landscape"
)

// Write serializes landscapes to w as CSV: one "x,y" record per sample, a
// blank record separating each polyline, in the order given.
func Write(w io.Writer, landscapes []landscape.Polyline) error {
	cw := csv.NewWriter(w)
	for _, lambda := range landscapes {
		for _, p := range lambda {
			record := []string{
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(p.Y, 'g', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("plcsv: writing sample: %w", err)
			}
		}
		if err := cw.Write([]string{"", ""}); err != nil {
			return fmt.Errorf("plcsv: writing separator record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("plcsv: flushing: %w", err)
	}
	return nil
}

package plparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arclake/plandscape/plcore"
)

// ErrMalformedLine is returned (wrapped with the offending line number and
// text) when a surviving line does not split into exactly two
// floating-point fields.
var ErrMalformedLine = errors.New("plparse: malformed birth/death line")

// Parse reads whitespace-separated "birth death" pairs from r, one per
// line. Blank lines and lines containing the token "inf" are silently
// dropped, following the CLI's original filter chain; everything else must
// parse as two float64 fields or Parse returns ErrMalformedLine.
func Parse(r io.Reader) ([]plcore.Interval, error) {
	var intervals []plcore.Interval

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, "inf") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}

		birth, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: birth %q: %v", ErrMalformedLine, lineNo, fields[0], err)
		}
		death, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: death %q: %v", ErrMalformedLine, lineNo, fields[1], err)
		}

		intervals = append(intervals, plcore.Interval{Birth: birth, Death: death})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("plparse: reading input: %w", err)
	}

	return intervals, nil
}

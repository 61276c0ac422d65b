package plparse_test

import (
	"strings"
	"testing"

	"github.com/arclake/plandscape/plcore"
	"github.com/arclake/plandscape/plparse"
	"github.com/stretchr/testify/require"
)

func TestParse_DropsEmptyAndInfLines(t *testing.T) {
	input := "0 6\n\n1 3\ninf inf\n2 7\n   \n"
	got, err := plparse.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []plcore.Interval{
		{Birth: 0, Death: 6},
		{Birth: 1, Death: 3},
		{Birth: 2, Death: 7},
	}, got)
}

func TestParse_TrimsWhitespace(t *testing.T) {
	got, err := plparse.Parse(strings.NewReader("  1.5   3.25  \n"))
	require.NoError(t, err)
	require.Equal(t, []plcore.Interval{{Birth: 1.5, Death: 3.25}}, got)
}

func TestParse_MalformedLine(t *testing.T) {
	_, err := plparse.Parse(strings.NewReader("0 6 9\n"))
	require.ErrorIs(t, err, plparse.ErrMalformedLine)
}

func TestParse_NonNumericField(t *testing.T) {
	_, err := plparse.Parse(strings.NewReader("zero six\n"))
	require.ErrorIs(t, err, plparse.ErrMalformedLine)
}

func TestParse_EmptyInput(t *testing.T) {
	got, err := plparse.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, got)
}

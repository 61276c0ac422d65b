package plcsv_test

import (
	"bytes"
	"testing"

	"github.com/arclake/plandscape/landscape"
	"github.com/arclake/plandscape/plcsv"
	"github.com/stretchr/testify/require"
)

func TestWrite_TwoLandscapesWithSeparator(t *testing.T) {
	landscapes := []landscape.Polyline{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 2, Y: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, plcsv.Write(&buf, landscapes))
	require.Equal(t, "0,0\n1,1\n,\n2,0\n,\n", buf.String())
}

func TestWrite_EmptyLandscapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plcsv.Write(&buf, nil))
	require.Empty(t, buf.String())
}

func TestWrite_EmptyPolylineStillGetsSeparator(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plcsv.Write(&buf, []landscape.Polyline{{}}))
	require.Equal(t, ",\n", buf.String())
}

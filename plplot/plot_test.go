package plplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arclake/plandscape/landscape"
	"github.com/arclake/plandscape/plplot"
	"github.com/stretchr/testify/require"
)

func TestSave_WritesNonEmptyPNG(t *testing.T) {
	landscapes := []landscape.Polyline{
		{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 0}},
		{},
	}
	path := filepath.Join(t.TempDir(), "landscape.png")
	require.NoError(t, plplot.Save(path, landscapes, 640, 480))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestSave_AllEmptyLandscapesStillProducesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, plplot.Save(path, []landscape.Polyline{{}, {}}, 320, 240))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

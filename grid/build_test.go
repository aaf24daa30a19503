package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowkit/elbow/geom"
)

func TestBuildCollectsSignificantCoordinates(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 100, Y: 50}
	aabb := geom.Bounds{XMin: 10, YMin: 10, XMax: 90, YMax: 40}
	common := geom.Bounds{XMin: 0, YMin: 0, XMax: 100, YMax: 50}

	g, err := Build([]geom.Bounds{aabb}, start, geom.Right, end, geom.Left, common)
	require.NoError(t, err)

	// startHeading=Right is horizontal -> contributes start.Y to V, not H.
	// endHeading=Left is horizontal -> contributes end.Y to V.
	// H: aabb.XMin, aabb.XMax, common.XMin, common.XMax = {10, 90, 0, 100}
	// V: start.Y, end.Y, aabb.YMin, aabb.YMax, common.YMin, common.YMax = {0, 50, 10, 40}
	assert.Equal(t, 4, g.Col)
	assert.Equal(t, 4, g.Row)
	assert.Equal(t, len(g.Data), g.Row*g.Col)
}

func TestBuildMaterializesRowMajorLattice(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 10, Y: 10}
	common := geom.Bounds{XMin: 0, YMin: 0, XMax: 10, YMax: 10}

	g, err := Build(nil, start, geom.Up, end, geom.Down, common)
	require.NoError(t, err)

	for row := 0; row < g.Row; row++ {
		for col := 0; col < g.Col; col++ {
			n := g.At(col, row)
			assert.Equal(t, col, n.Col)
			assert.Equal(t, row, n.Row)
			assert.Equal(t, NoParent, n.Parent)
		}
	}
}

func TestBuildSortsAxesAscending(t *testing.T) {
	start := geom.Point{X: 50, Y: 0}
	end := geom.Point{X: 10, Y: 0}
	common := geom.Bounds{XMin: 0, YMin: 0, XMax: 50, YMax: 20}

	g, err := Build(nil, start, geom.Up, end, geom.Up, common)
	require.NoError(t, err)

	prev := -1.0
	for col := 0; col < g.Col; col++ {
		x := g.At(col, 0).Pos.X
		assert.Greater(t, x, prev)
		prev = x
	}
}

func TestFindLocatesExactCoordinate(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 20, Y: 20}
	common := geom.Bounds{XMin: 0, YMin: 0, XMax: 20, YMax: 20}

	g, err := Build(nil, start, geom.Right, end, geom.Left, common)
	require.NoError(t, err)

	n, ok := g.Find(geom.Point{X: 0, Y: 0})
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, n.Pos)

	_, ok = g.Find(geom.Point{X: 5, Y: 5})
	assert.False(t, ok)
}

func TestNeighborRespectsGridEdges(t *testing.T) {
	start := geom.Point{X: 0, Y: 0}
	end := geom.Point{X: 10, Y: 10}
	common := geom.Bounds{XMin: 0, YMin: 0, XMax: 10, YMax: 10}

	g, err := Build(nil, start, geom.Up, end, geom.Down, common)
	require.NoError(t, err)

	corner := g.At(0, 0)
	assert.Nil(t, g.Neighbor(corner, geom.Up))
	assert.Nil(t, g.Neighbor(corner, geom.Left))
	assert.NotNil(t, g.Neighbor(corner, geom.Right))
	assert.NotNil(t, g.Neighbor(corner, geom.Down))
}

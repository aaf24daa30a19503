package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowkit/elbow/geom"
	"github.com/arrowkit/elbow/scene"
)

// identitySnapper returns inputs unchanged, letting tests isolate Resolve's
// branching from outline-snapping geometry (bit-exact snapping is outside
// this spec per spec.md §6).
type identitySnapper struct{}

func (identitySnapper) SnapToOutline(p geom.Point, s scene.Shape) geom.Point { return p }
func (identitySnapper) DistanceToShape(p geom.Point, s scene.Shape) float64  { return 0 }
func (identitySnapper) AvoidCorner(p geom.Point, s scene.Shape) geom.Point   { return p }
func (identitySnapper) SnapToMid(p geom.Point, s scene.Shape) geom.Point     { return p }
func (identitySnapper) HoveredShapeAt(p geom.Point, shapes []scene.Shape, fullyInside bool) (scene.Shape, bool) {
	return scene.Shape{}, false
}

func TestResolveFreePoint(t *testing.T) {
	raw := geom.Point{X: 10, Y: 20}
	other := geom.Point{X: 110, Y: 20}
	p, h := Resolve(raw, nil, nil, nil, false, other, identitySnapper{})
	require.Equal(t, raw, p)
	assert.Equal(t, geom.Right, h)
}

func TestResolveBoundShape(t *testing.T) {
	shape := scene.Shape{X: 0, Y: 0, Width: 50, Height: 50, Kind: scene.Rectangle}
	binding := &scene.Binding{ElementID: "a", FixedX: 1, FixedY: 0.5}
	raw := binding.PointOn(shape)
	other := geom.Point{X: 200, Y: 25}

	p, h := Resolve(raw, binding, &shape, nil, false, other, identitySnapper{})
	assert.Equal(t, raw, p)
	assert.Equal(t, geom.Right, h)
}

func TestResolveMissingBoundShapeFallsThrough(t *testing.T) {
	binding := &scene.Binding{ElementID: "deleted"}
	raw := geom.Point{X: 5, Y: 5}
	other := geom.Point{X: 5, Y: 105}

	p, h := Resolve(raw, binding, nil, nil, false, other, identitySnapper{})
	assert.Equal(t, raw, p)
	assert.Equal(t, geom.Down, h)
}

func TestResolveDraggingHoveredRectanguloid(t *testing.T) {
	shape := scene.Shape{X: 0, Y: 0, Width: 50, Height: 50, Kind: scene.Frame}
	raw := geom.Point{X: 25, Y: 0}
	other := geom.Point{X: 25, Y: -100}

	p, h := Resolve(raw, nil, nil, &shape, true, other, identitySnapper{})
	assert.Equal(t, raw, p)
	assert.Equal(t, geom.Up, h)
}

package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrowkit/elbow/geom"
)

func TestShapeAABBUnrotated(t *testing.T) {
	s := Shape{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, geom.Bounds{XMin: 10, YMin: 20, XMax: 40, YMax: 60}, s.AABB())
}

func TestShapeAABBRotatedSquareIsWider(t *testing.T) {
	s := Shape{X: 0, Y: 0, Width: 10, Height: 10, Angle: math.Pi / 4}
	b := s.AABB()
	diag := 10 * math.Sqrt2
	assert.InDelta(t, diag, b.Width(), 1e-9)
	assert.InDelta(t, diag, b.Height(), 1e-9)
	c := s.Center()
	assert.InDelta(t, c.X, b.Center().X, 1e-9)
	assert.InDelta(t, c.Y, b.Center().Y, 1e-9)
}

func TestBindingPointOn(t *testing.T) {
	s := Shape{X: 0, Y: 0, Width: 100, Height: 50}
	b := Binding{FixedX: 1, FixedY: 0.5}
	assert.Equal(t, geom.Point{X: 100, Y: 25}, b.PointOn(s))
}

func TestIsRectanguloid(t *testing.T) {
	assert.True(t, IsRectanguloid(Rectangle))
	assert.True(t, IsRectanguloid(Image))
	assert.True(t, IsRectanguloid(Frame))
	assert.False(t, IsRectanguloid(Diamond))
	assert.False(t, IsRectanguloid(Ellipse))
}

func TestMemoryStoreAndApply(t *testing.T) {
	m := NewMemory()
	id := m.AddShape(Shape{X: 0, Y: 0, Width: 10, Height: 10})
	require.NotEmpty(t, id)

	got, ok := m.Shape(id)
	require.True(t, ok)
	assert.Equal(t, id, got.ID)

	_, ok = m.Shape("missing")
	assert.False(t, ok)

	assert.Len(t, m.NonDeleted(), 1)

	update := Update{Points: []geom.Point{{X: 0, Y: 0}}, X: 5, Y: 5}
	m.Apply("arrow1", update, true)
	got2, ok := m.LastUpdate("arrow1")
	require.True(t, ok)
	assert.Equal(t, update, got2)
}

func TestMemoryAddShapePreservesExplicitID(t *testing.T) {
	m := NewMemory()
	id := m.AddShape(Shape{ID: "fixed", X: 0, Y: 0})
	assert.Equal(t, "fixed", id)
}

package heading

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arrowkit/elbow/geom"
	"github.com/arrowkit/elbow/scene"
)

// ForPoint computes the outward direction from shape's center through
// point, given the shape's (already outward-scaled) bounding box aabb
// (spec.md §4.1).
func ForPoint(shape scene.Shape, aabb geom.Bounds, point geom.Point) geom.Heading {
	if shape.Kind == scene.Diamond {
		return diamondHeading(shape, aabb, point)
	}
	return rectHeading(shape, aabb, point)
}

// outwardScale pushes a shape's corner rays far enough from center that the
// resulting triangles behave like infinite angular wedges: aabb's own
// corners only bound the near edge of each wedge, so a point well outside
// the shape (a free point far across the canvas) would otherwise fall
// outside every finite triangle.
const outwardScale = 1e6

// rectHeading handles every non-diamond shape: the point is tested against
// the four center-anchored triangles formed by aabb's corners scaled
// outward from center, in up->right->down->left order so boundary points
// resolve deterministically (spec.md §4.1).
func rectHeading(shape scene.Shape, aabb geom.Bounds, point geom.Point) geom.Heading {
	c := shape.Center()
	scale := func(p geom.Point) geom.Point {
		return c.Add(p.Sub(c).Scale(outwardScale))
	}
	tl := scale(geom.Point{X: aabb.XMin, Y: aabb.YMin})
	tr := scale(geom.Point{X: aabb.XMax, Y: aabb.YMin})
	br := scale(geom.Point{X: aabb.XMax, Y: aabb.YMax})
	bl := scale(geom.Point{X: aabb.XMin, Y: aabb.YMax})

	switch {
	case geom.InTriangle(point, c, tl, tr):
		return geom.Up
	case geom.InTriangle(point, c, tr, br):
		return geom.Right
	case geom.InTriangle(point, c, br, bl):
		return geom.Down
	default:
		return geom.Left
	}
}

// diamondHeading implements spec.md §4.1's diamond special case: a
// single-side axis-aligned overhang resolves directly, otherwise the point
// is classified by its edge-angle relative to the shape's center once
// rotated into the shape's unrotated frame (see the comment below).
func diamondHeading(shape scene.Shape, aabb geom.Bounds, point geom.Point) geom.Heading {
	withinX := point.X >= aabb.XMin && point.X <= aabb.XMax
	withinY := point.Y >= aabb.YMin && point.Y <= aabb.YMax

	switch {
	case point.Y < aabb.YMin && withinX:
		return geom.Up
	case point.Y > aabb.YMax && withinX:
		return geom.Down
	case point.X < aabb.XMin && withinY:
		return geom.Left
	case point.X > aabb.XMax && withinY:
		return geom.Right
	}

	c := shape.Center()

	// Rather than rotating the diamond's four tips forward and testing
	// which of the resulting top-right/right-bottom/bottom-left/left-top
	// triangles contains point, rotate point backward by -Angle about c:
	// the tips then sit exactly on the unrotated N/E/S/W axes, so the
	// triangles those tips would have formed collapse onto the same
	// [315,45)/[45,135)/[135,225)/[225,315) ranges edgeAngleHeading already
	// tests. The two are equivalent; this form needs only one rotation.
	inv := mgl64.Rotate2D(-shape.Angle)
	d := point.Sub(c)
	lv := inv.Mul2x1(mgl64.Vec2{d.X, d.Y})
	local := c.Add(geom.Vector{X: lv[0], Y: lv[1]})

	return edgeAngleHeading(local, c)
}

// edgeAngleHeading classifies the vector from c to p by its angle
// (atan2(Δy, Δx)·180/π, normalized to [0,360)) per spec.md §4.1's table:
// [315,45)=UP, [45,135)=RIGHT, [135,225)=DOWN, else LEFT.
func edgeAngleHeading(p, c geom.Point) geom.Heading {
	angle := math.Atan2(p.Y-c.Y, p.X-c.X) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	switch {
	case angle >= 315 || angle < 45:
		return geom.Up
	case angle >= 45 && angle < 135:
		return geom.Right
	case angle >= 135 && angle < 225:
		return geom.Down
	default:
		return geom.Left
	}
}

// BindPointHeading derives the heading for an endpoint. If hovered is
// non-nil, it delegates to ForPoint; otherwise it classifies the vector
// from point to otherPoint into its dominant axis (spec.md §4.1).
func BindPointHeading(point, otherPoint geom.Point, hovered *scene.Shape, aabb geom.Bounds) geom.Heading {
	if hovered != nil {
		return ForPoint(*hovered, aabb, point)
	}
	d := otherPoint.Sub(point)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X >= 0 {
			return geom.Right
		}
		return geom.Left
	}
	if d.Y >= 0 {
		return geom.Down
	}
	return geom.Up
}

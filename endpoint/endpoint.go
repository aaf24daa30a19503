package endpoint

import (
	"github.com/arrowkit/elbow/geom"
	"github.com/arrowkit/elbow/heading"
	"github.com/arrowkit/elbow/scene"
)

// Resolve resolves a raw endpoint to a global point and an outward heading
// (spec.md §4.2). It is total: every input, bound or not, produces a
// heading (spec.md §9 Open Question #4 — there is no "no heading" case to
// fall back from).
//
// Precedence, in order:
//  1. isDragging and hovered is non-nil: snap raw to hovered's outline; if
//     hovered is rectanguloid, further apply AvoidCorner then SnapToMid so
//     the point lands on an edge-midpoint corridor rather than a corner.
//  2. binding is non-nil and boundShape is non-nil: snap raw to boundShape's
//     outline. A binding whose shape was deleted (boundShape == nil) is
//     treated as no binding (spec.md §7) and falls through to case 3.
//  3. Otherwise: raw is returned unchanged.
//
// otherPoint is the arrow's opposite endpoint, used when no shape is in play
// to derive a heading from the dominant axis between the two points.
func Resolve(
	raw geom.Point,
	binding *scene.Binding,
	boundShape *scene.Shape,
	hovered *scene.Shape,
	isDragging bool,
	otherPoint geom.Point,
	snapper scene.OutlineSnapper,
) (geom.Point, geom.Heading) {
	var resolved geom.Point
	var headingShape *scene.Shape

	switch {
	case isDragging && hovered != nil:
		resolved = snapper.SnapToOutline(raw, *hovered)
		if scene.IsRectanguloid(hovered.Kind) {
			resolved = snapper.AvoidCorner(resolved, *hovered)
			resolved = snapper.SnapToMid(resolved, *hovered)
		}
		headingShape = hovered
	case binding != nil && boundShape != nil:
		resolved = snapper.SnapToOutline(raw, *boundShape)
		headingShape = boundShape
	default:
		resolved = raw
	}

	var aabb geom.Bounds
	if headingShape != nil {
		aabb = headingShape.AABB()
	}

	return resolved, heading.BindPointHeading(resolved, otherPoint, headingShape, aabb)
}

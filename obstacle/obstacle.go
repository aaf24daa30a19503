package obstacle

import (
	"math"

	"github.com/pkg/errors"

	"github.com/arrowkit/elbow/geom"
)

// FixedBindingDistance is the base clearance the router keeps between a
// bound shape's outline and the routing corridor.
const FixedBindingDistance = 8.0

// rawOutwardMultiplier scales FixedBindingDistance for the outward side of
// an endpoint's raw AABB (spec.md §4.3: "shape AABBs expanded by
// 4×FIXED_BINDING_DISTANCE on the outward side of the heading").
const rawOutwardMultiplier = 4.0

// overlapExpansion is the slack added to the outer sides of two dynamic
// AABBs that already overlap (spec.md §4.3).
const overlapExpansion = 40.0

// freePointHalfExtent is half the side length of the tiny square obstacle
// used for a free (unbound) endpoint.
const freePointHalfExtent = 2.0

// RawBounds returns the raw obstacle AABB for one endpoint: a shape's AABB
// expanded outward, or a tiny square around a free point (spec.md §4.3).
// shapeAABB is nil for a free point.
func RawBounds(shapeAABB *geom.Bounds, h geom.Heading, point geom.Point) geom.Bounds {
	if shapeAABB == nil {
		return geom.Bounds{
			XMin: point.X - freePointHalfExtent, YMin: point.Y - freePointHalfExtent,
			XMax: point.X + freePointHalfExtent, YMax: point.Y + freePointHalfExtent,
		}
	}
	b := shapeAABB.Expand(FixedBindingDistance)
	return b.ExpandOutward(FixedBindingDistance*(rawOutwardMultiplier-1), h)
}

// offset returns the clearance Dynamic keeps past an endpoint on its raw
// box's sides, per the 4× outward multiplier spec.md §4.3 describes for the
// raw AABB itself.
func offset() float64 { return FixedBindingDistance * rawOutwardMultiplier }

// Dynamic produces the two obstacle AABBs the router routes around
// (spec.md §4.3), given the raw per-endpoint boxes and the points they
// surround. It returns ErrDegenerateBounds, wrapped with the offending
// box, if either result violates the XMin<=XMax/YMin<=YMax invariant — a
// logic error in this package, not a caller error.
func Dynamic(a geom.Bounds, aPoint geom.Point, b geom.Bounds, bPoint geom.Point) (geom.Bounds, geom.Bounds, error) {
	c := geom.Common(a, b)

	var candA, candB geom.Bounds
	if geom.Overlaps(a, b) {
		candA, candB = expandOverlapping(a, c), expandOverlapping(b, c)
	} else {
		candA = clamp(a, b, c, aPoint, offset())
		candB = clamp(b, a, c, bPoint, offset())
		if !geom.SeparatedX(candA, candB) && !geom.SeparatedY(candA, candB) {
			candA, candB = quadrantFixup(a, b, candA, candB)
		}
	}

	if err := validate(candA); err != nil {
		return geom.Bounds{}, geom.Bounds{}, err
	}
	if err := validate(candB); err != nil {
		return geom.Bounds{}, geom.Bounds{}, err
	}
	return candA, candB, nil
}

func validate(b geom.Bounds) error {
	if b.XMin > b.XMax || b.YMin > b.YMax {
		return errors.Wrapf(ErrDegenerateBounds, "got %+v", b)
	}
	return nil
}

// expandOverlapping pushes box's outer sides (the ones coinciding with the
// common AABB c) outward by overlapExpansion, leaving inner sides — the
// ones already inside the other box — untouched (spec.md §4.3's overlap
// branch).
func expandOverlapping(box, c geom.Bounds) geom.Bounds {
	out := box
	if box.XMin == c.XMin {
		out.XMin -= overlapExpansion
	}
	if box.YMin == c.YMin {
		out.YMin -= overlapExpansion
	}
	if box.XMax == c.XMax {
		out.XMax += overlapExpansion
	}
	if box.YMax == c.YMax {
		out.YMax += overlapExpansion
	}
	return out
}

// clamp computes the disjoint candidate AABB for box (surrounding point),
// given the opposing box other and the common bound c (spec.md §4.3's
// per-coordinate rule). On each axis where box and other are separated, the
// edge facing other is pulled to the midpoint between them (clamped so the
// box still extends at least offset past point), and the opposite, outer
// edge is anchored to point ± offset (or c's edge ± offset, if the raw box
// already extended to the common bound on that side). On an axis where box
// and other are not separated, both edges are left at their raw extent.
func clamp(box, other, c geom.Bounds, point geom.Point, off float64) geom.Bounds {
	out := box
	sepX := geom.SeparatedX(box, other)
	sepY := geom.SeparatedY(box, other)

	if sepX {
		if box.XMax < other.XMin {
			mid := (box.XMax + other.XMin) / 2
			if sepY {
				mid = math.Max(mid, point.X+off)
			}
			out.XMax = mid
			if box.XMin == c.XMin {
				out.XMin = c.XMin - off
			} else {
				out.XMin = point.X - off
			}
		} else {
			mid := (box.XMin + other.XMax) / 2
			if sepY {
				mid = math.Min(mid, point.X-off)
			}
			out.XMin = mid
			if box.XMax == c.XMax {
				out.XMax = c.XMax + off
			} else {
				out.XMax = point.X + off
			}
		}
	}

	if sepY {
		if box.YMax < other.YMin {
			mid := (box.YMax + other.YMin) / 2
			if sepX {
				mid = math.Max(mid, point.Y+off)
			}
			out.YMax = mid
			if box.YMin == c.YMin {
				out.YMin = c.YMin - off
			} else {
				out.YMin = point.Y - off
			}
		} else {
			mid := (box.YMin + other.YMax) / 2
			if sepX {
				mid = math.Min(mid, point.Y-off)
			}
			out.YMin = mid
			if box.YMax == c.YMax {
				out.YMax = c.YMax + off
			} else {
				out.YMax = point.Y + off
			}
		}
	}

	return out
}

// quadrantFixup resolves the corner-touching configuration spec.md §4.3
// calls out: candA and candB, despite the per-axis clamping above, still
// overlap on both axes. It splits along a's diagonal, picking the common
// X-center or Y-center cut that separates the two candidates, based on the
// sign of the cross product of a's diagonal against the vector from a's
// center to candB's center.
func quadrantFixup(a, b, candA, candB geom.Bounds) (geom.Bounds, geom.Bounds) {
	c := geom.Common(a, b)
	cx := geom.Common(a, b).Center().X
	cy := c.Center().Y

	diag := geom.Vector{X: a.XMax - a.XMin, Y: a.YMax - a.YMin}
	toB := candB.Center().Sub(a.Center())
	cross := diag.Cross(toB)

	outA, outB := candA, candB
	if cross >= 0 {
		// Split at the common X-center: a keeps the side its center sits on.
		if a.Center().X <= cx {
			outA.XMax = cx
			outB.XMin = cx
		} else {
			outA.XMin = cx
			outB.XMax = cx
		}
		return outA, outB
	}
	// Split at the common Y-center.
	if a.Center().Y <= cy {
		outA.YMax = cy
		outB.YMin = cy
	} else {
		outA.YMin = cy
		outB.YMax = cy
	}
	return outA, outB
}

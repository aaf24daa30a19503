package geom

import "math"

// Bounds is an axis-aligned bounding box. The invariant XMin <= XMax and
// YMin <= YMax (spec.md §3) is the caller's responsibility to maintain;
// constructors here preserve it given well-formed input.
type Bounds struct {
	XMin, YMin, XMax, YMax float64
}

// NewBounds returns the AABB with the given edges, normalizing so that
// XMin <= XMax and YMin <= YMax regardless of argument order.
func NewBounds(x1, y1, x2, y2 float64) Bounds {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Bounds{XMin: x1, YMin: y1, XMax: x2, YMax: y2}
}

// Width returns XMax - XMin.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint of b.
func (b Bounds) Center() Point {
	return Point{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// ContainsCorner reports whether any of other's four corners lies within b;
// used by the dynamic AABB generator's overlap test (spec.md §4.3).
func (b Bounds) ContainsCorner(other Bounds) bool {
	corners := [4]Point{
		{X: other.XMin, Y: other.YMin},
		{X: other.XMax, Y: other.YMin},
		{X: other.XMax, Y: other.YMax},
		{X: other.XMin, Y: other.YMax},
	}
	for _, c := range corners {
		if b.Contains(c) {
			return true
		}
	}
	return false
}

// Overlaps reports whether a and b overlap, tested symmetrically (either
// box containing a corner of the other), matching spec.md §4.3's "any
// corner of one inside the other" rule.
func Overlaps(a, b Bounds) bool {
	return a.ContainsCorner(b) || b.ContainsCorner(a)
}

// SeparatedX reports whether a and b do not overlap on the x-axis.
func SeparatedX(a, b Bounds) bool {
	return a.XMax < b.XMin || b.XMax < a.XMin
}

// SeparatedY reports whether a and b do not overlap on the y-axis.
func SeparatedY(a, b Bounds) bool {
	return a.YMax < b.YMin || b.YMax < a.YMin
}

// Common returns the smallest AABB enclosing both a and b (the "common
// AABB" of the glossary).
func Common(a, b Bounds) Bounds {
	return Bounds{
		XMin: math.Min(a.XMin, b.XMin),
		YMin: math.Min(a.YMin, b.YMin),
		XMax: math.Max(a.XMax, b.XMax),
		YMax: math.Max(a.YMax, b.YMax),
	}
}

// Expand grows b by d on every side.
func (b Bounds) Expand(d float64) Bounds {
	return Bounds{XMin: b.XMin - d, YMin: b.YMin - d, XMax: b.XMax + d, YMax: b.YMax + d}
}

// ExpandOutward grows b by d only on the sides named in sides.
func (b Bounds) ExpandOutward(d float64, sides ...Heading) Bounds {
	out := b
	for _, s := range sides {
		switch s {
		case Up:
			out.YMin -= d
		case Down:
			out.YMax += d
		case Left:
			out.XMin -= d
		case Right:
			out.XMax += d
		}
	}
	return out
}

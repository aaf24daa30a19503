package postprocess

import "github.com/arrowkit/elbow/geom"

// Simplify removes every middle point whose incoming and outgoing headings
// are equal, collapsing runs of collinear axis-aligned points into their
// endpoints (spec.md §4.6). It is idempotent: Simplify(Simplify(p)) ==
// Simplify(p).
func Simplify(points []geom.Point) []geom.Point {
	if len(points) < 3 {
		out := make([]geom.Point, len(points))
		copy(out, points)
		return out
	}

	result := make([]geom.Point, 2, len(points))
	result[0], result[1] = points[0], points[1]

	for _, p := range points[2:] {
		last := len(result) - 1
		in := geom.HeadingBetween(result[last-1], result[last])
		out := geom.HeadingBetween(result[last], p)
		if in == out {
			result[last] = p
		} else {
			result = append(result, p)
		}
	}
	return result
}

// Normalize translates points so the first point sits at the origin and
// reports the original first point as the arrow's global position, plus
// the bounding width/height of the (now-local) points (spec.md §4.6).
// Translating local back by (x, y) reproduces the original points.
func Normalize(points []geom.Point) (local []geom.Point, x, y, width, height float64) {
	if len(points) == 0 {
		return nil, 0, 0, 0, 0
	}

	ox, oy := points[0].X, points[0].Y
	local = make([]geom.Point, len(points))
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	for i, p := range points {
		lp := geom.Point{X: p.X - ox, Y: p.Y - oy}
		local[i] = lp
		if i == 0 || lp.X < minX {
			minX = lp.X
		}
		if i == 0 || lp.X > maxX {
			maxX = lp.X
		}
		if i == 0 || lp.Y < minY {
			minY = lp.Y
		}
		if i == 0 || lp.Y > maxY {
			maxY = lp.Y
		}
	}
	return local, ox, oy, maxX - minX, maxY - minY
}

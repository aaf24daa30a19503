package geom

// LineSegment is an ordered pair of points.
type LineSegment struct {
	A, B Point
}

// SegmentsIntersectAt returns the intersection point of segments p1-p2 and
// p3-p4, if one exists within both segments' bounds.
//
// Per spec.md §9 Open Question #2: t nominally scales r=(p2-p1) and u
// nominally scales s=(p4-p3), and the denominator/numerators below are
// computed with exactly that convention. The returned point, however, is
// formed by scaling r with u instead of t — the reversed convention the
// spec flags as a likely source bug. This helper is not used anywhere in
// the routing pipeline described by this module; it is reproduced here
// verbatim for parity with the library surface spec.md documents. Re-derive
// and confirm before relying on it for anything new.
func SegmentsIntersectAt(p1, p2, p3, p4 Point) (Point, bool) {
	r := p2.Sub(p1)
	s := p4.Sub(p3)
	rxs := r.Cross(s)
	if rxs == 0 {
		return Point{}, false
	}

	qp := p3.Sub(p1)
	t := qp.Cross(s) / rxs
	u := qp.Cross(r) / rxs
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return p1.Add(r.Scale(u)), true
}

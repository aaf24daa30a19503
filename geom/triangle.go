package geom

// InTriangle reports whether p lies inside (or on the boundary of) the
// triangle a-b-c, using the sign of the barycentric cross products. It is
// used by the heading classifier to decide which of a shape's four
// center-anchored triangles a bound point falls into (spec.md §4.1).
func InTriangle(p, a, b, c Point) bool {
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

func sign(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

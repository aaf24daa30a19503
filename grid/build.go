package grid

import (
	"sort"

	"github.com/arrowkit/elbow/geom"
)

// Build constructs the routing lattice from the union of every significant
// x- and y-coordinate for one routing call (spec.md §4.4): from each
// endpoint, the coordinate along its heading's perpendicular axis; both
// edges of every obstacle AABB and of common; sorted and deduplicated per
// axis, then materialized into a |V|×|H| array of Nodes.
func Build(aabbs []geom.Bounds, start geom.Point, startHeading geom.Heading, end geom.Point, endHeading geom.Heading, common geom.Bounds) (*Grid, error) {
	xs := make(map[float64]struct{})
	ys := make(map[float64]struct{})

	addEndpoint := func(p geom.Point, h geom.Heading) {
		if h.Horizontal() {
			ys[p.Y] = struct{}{}
		} else {
			xs[p.X] = struct{}{}
		}
	}
	addEndpoint(start, startHeading)
	addEndpoint(end, endHeading)

	addBounds := func(b geom.Bounds) {
		xs[b.XMin] = struct{}{}
		xs[b.XMax] = struct{}{}
		ys[b.YMin] = struct{}{}
		ys[b.YMax] = struct{}{}
	}
	for _, b := range aabbs {
		addBounds(b)
	}
	addBounds(common)

	h := sortedKeys(xs)
	v := sortedKeys(ys)
	if len(h) == 0 || len(v) == 0 {
		return nil, ErrEmptyAxis
	}

	g := &Grid{Row: len(v), Col: len(h), Data: make([]Node, len(v)*len(h))}
	for row, y := range v {
		for col, x := range h {
			g.Data[g.Index(col, row)] = Node{
				Pos:    geom.Point{X: x, Y: y},
				Col:    col,
				Row:    row,
				Parent: NoParent,
			}
		}
	}
	return g, nil
}

func sortedKeys(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Float64s(out)
	return out
}

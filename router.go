package elbow

import (
	"github.com/pkg/errors"

	"github.com/arrowkit/elbow/astar"
	"github.com/arrowkit/elbow/endpoint"
	"github.com/arrowkit/elbow/geom"
	"github.com/arrowkit/elbow/grid"
	"github.com/arrowkit/elbow/obstacle"
	"github.com/arrowkit/elbow/postprocess"
	"github.com/arrowkit/elbow/scene"
)

// Route resolves arrow's two endpoints against nextPoints and the scene,
// routes an orthogonal polyline between them, and hands the result to sink
// (spec.md §6). Only nextPoints[0] and nextPoints[len-1] are consulted.
//
// Route never returns an error for routing outcomes spec.md §7 classifies
// as non-errors: identical start/end points produce a single-point update,
// a missing bound shape is treated as no binding, and a search that never
// reaches end is logged through cfg.Logger and leaves the arrow untouched.
// The returned error is reserved for misuse (nil collaborators, empty
// nextPoints) and for the obstacle/grid packages' own internal invariants.
func Route(arrow scene.Arrow, sc scene.Store, snapper scene.OutlineSnapper, sink scene.MutationSink, nextPoints []geom.Point, opts ...Option) error {
	if sc == nil {
		return ErrNilStore
	}
	if snapper == nil {
		return ErrNilSnapper
	}
	if sink == nil {
		return ErrNilSink
	}
	if len(nextPoints) == 0 {
		return ErrEmptyPoints
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	snap := newSnapshot(sc, cfg.ChangedElements)

	rawStart := nextPoints[0].Add(cfg.Offset)
	rawEnd := nextPoints[len(nextPoints)-1].Add(cfg.Offset)

	startBinding := effectiveBinding(arrow.StartBinding, cfg.DisableBinding)
	endBinding := effectiveBinding(arrow.EndBinding, cfg.DisableBinding)
	startBoundShape := boundShapeFor(startBinding, snap)
	endBoundShape := boundShapeFor(endBinding, snap)

	var startHovered, endHovered *scene.Shape
	if cfg.IsDragging {
		if s, ok := snapper.HoveredShapeAt(rawStart, snap.all(), false); ok {
			startHovered = &s
		}
		if s, ok := snapper.HoveredShapeAt(rawEnd, snap.all(), false); ok {
			endHovered = &s
		}
	}

	startPoint, startHeading := endpoint.Resolve(rawStart, startBinding, startBoundShape, startHovered, cfg.IsDragging, rawEnd, snapper)
	endPoint, endHeading := endpoint.Resolve(rawEnd, endBinding, endBoundShape, endHovered, cfg.IsDragging, rawStart, snapper)

	update := func(points []geom.Point) scene.Update {
		local, x, y, width, height := postprocess.Normalize(points)
		u := scene.Update{Points: local, X: x, Y: y, Width: width, Height: height, StartBinding: startBinding, EndBinding: endBinding}
		if cfg.OtherStartBinding != nil {
			u.StartBinding = cfg.OtherStartBinding
		}
		if cfg.OtherEndBinding != nil {
			u.EndBinding = cfg.OtherEndBinding
		}
		return u
	}

	// Degenerate input (spec.md §7): identical endpoints route to a
	// single-point path, not an error.
	if startPoint.Equal(endPoint) {
		sink.Apply(arrow.ID, update([]geom.Point{startPoint}), cfg.InformMutation)
		return nil
	}

	startGoverning := governingShape(cfg.IsDragging, startHovered, startBoundShape)
	endGoverning := governingShape(cfg.IsDragging, endHovered, endBoundShape)

	var startShapeAABB, endShapeAABB *geom.Bounds
	if startGoverning != nil {
		b := startGoverning.AABB()
		startShapeAABB = &b
	}
	if endGoverning != nil {
		b := endGoverning.AABB()
		endShapeAABB = &b
	}

	rawStartBox := obstacle.RawBounds(startShapeAABB, startHeading, startPoint)
	rawEndBox := obstacle.RawBounds(endShapeAABB, endHeading, endPoint)

	candA, candB, err := obstacle.Dynamic(rawStartBox, startPoint, rawEndBox, endPoint)
	if err != nil {
		return errors.Wrap(err, "elbow: computing dynamic obstacles")
	}
	common := geom.Common(candA, candB)

	g, err := grid.Build([]geom.Bounds{candA, candB}, startPoint, startHeading, endPoint, endHeading, common)
	if err != nil {
		return errors.Wrap(err, "elbow: building routing grid")
	}

	dongleStart := project(startPoint, startHeading, candA)
	dongleEnd := project(endPoint, endHeading, candB)

	obstacles := []geom.Bounds{candA, candB}
	if candB.Contains(dongleStart) && candA.Contains(dongleEnd) {
		obstacles = nil
	}

	startNode, ok := g.Find(dongleStart)
	if !ok {
		startNode, ok = g.Find(startPoint)
	}
	if !ok {
		return errors.Wrap(ErrNoGridNode, "elbow: resolving start node")
	}
	endNode, ok := g.Find(dongleEnd)
	if !ok {
		endNode, ok = g.Find(endPoint)
	}
	if !ok {
		return errors.Wrap(ErrNoGridNode, "elbow: resolving end node")
	}

	// Node banning (spec.md §4.5): a node inside the start shape is banned
	// when the start is actually bound; a node inside the end shape is
	// banned when the end is currently hovered while dragging. The start
	// and end nodes themselves are always exempt, or the search could never
	// begin or terminate.
	if startBoundShape != nil {
		banInterior(g, startBoundShape.AABB(), startNode, endNode)
	}
	if cfg.IsDragging && endHovered != nil {
		banInterior(g, endHovered.AABB(), startNode, endNode)
	}

	path, found := astar.Search(g, startNode, endNode, startHeading, endHeading, obstacles)
	if !found {
		if cfg.Logger != nil {
			cfg.Logger.Errorw("Elbow arrow cannot find a route", "arrowID", arrow.ID)
		}
		return nil
	}

	points := make([]geom.Point, 0, len(path)+2)
	if !dongleStart.Equal(startPoint) {
		points = append(points, startPoint)
	}
	for _, n := range path {
		points = append(points, n.Pos)
	}
	if !dongleEnd.Equal(endPoint) {
		points = append(points, endPoint)
	}

	simplified := postprocess.Simplify(points)
	sink.Apply(arrow.ID, update(simplified), cfg.InformMutation)
	return nil
}

// effectiveBinding returns b, or nil if disabled is true.
func effectiveBinding(b *scene.Binding, disabled bool) *scene.Binding {
	if disabled {
		return nil
	}
	return b
}

// boundShapeFor resolves b's shape against snap. A binding whose shape was
// deleted resolves to nil, treated as no binding (spec.md §7).
func boundShapeFor(b *scene.Binding, snap snapshot) *scene.Shape {
	if b == nil {
		return nil
	}
	if s, ok := snap.shape(b.ElementID); ok {
		return &s
	}
	return nil
}

// governingShape picks the shape that determines an endpoint's heading and
// raw obstacle box, matching endpoint.Resolve's own precedence (spec.md
// §4.2): hovered while dragging beats bound, which beats free.
func governingShape(dragging bool, hovered, boundShape *scene.Shape) *scene.Shape {
	if dragging && hovered != nil {
		return hovered
	}
	return boundShape
}

// project returns the point on box's edge facing h, holding p's coordinate
// on the perpendicular axis (clamped into box's extent on that axis) — the
// dongle projection of spec.md §4.5.
func project(p geom.Point, h geom.Heading, box geom.Bounds) geom.Point {
	switch h {
	case geom.Up:
		return geom.Point{X: clampTo(p.X, box.XMin, box.XMax), Y: box.YMin}
	case geom.Down:
		return geom.Point{X: clampTo(p.X, box.XMin, box.XMax), Y: box.YMax}
	case geom.Left:
		return geom.Point{X: box.XMin, Y: clampTo(p.Y, box.YMin, box.YMax)}
	default: // geom.Right
		return geom.Point{X: box.XMax, Y: clampTo(p.Y, box.YMin, box.YMax)}
	}
}

func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// banInterior closes every node of g that lies strictly inside aabb, except
// the nodes in exempt.
func banInterior(g *grid.Grid, aabb geom.Bounds, exempt ...*grid.Node) {
	for i := range g.Data {
		n := &g.Data[i]
		if isExempt(n, exempt) {
			continue
		}
		if n.Pos.X > aabb.XMin && n.Pos.X < aabb.XMax && n.Pos.Y > aabb.YMin && n.Pos.Y < aabb.YMax {
			n.Closed = true
		}
	}
}

func isExempt(n *grid.Node, exempt []*grid.Node) bool {
	for _, e := range exempt {
		if e == n {
			return true
		}
	}
	return false
}

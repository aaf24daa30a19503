package scene

import (
	"math"

	"github.com/google/uuid"

	"github.com/arrowkit/elbow/geom"
)

// Kind distinguishes the handful of shape categories the router treats
// specially. Everything other than Diamond is handled by the generic
// triangle-containment heading classifier; Diamond gets its own rotated
// tip-midpoint classification (spec.md §4.1).
type Kind string

const (
	// Rectangle is a plain rectanguloid shape.
	Rectangle Kind = "rectangle"
	// Image is a rectanguloid shape.
	Image Kind = "image"
	// Frame is a rectanguloid shape.
	Frame Kind = "frame"
	// Diamond gets rotated tip-midpoint heading classification.
	Diamond Kind = "diamond"
	// Ellipse is neither diamond nor rectanguloid; treated like a generic
	// shape by the triangle-containment classifier.
	Ellipse Kind = "ellipse"
)

// IsRectanguloid reports whether k's occupiable area is rectangular
// (rectangle, image, frame), as opposed to a diamond or ellipse (glossary).
func IsRectanguloid(k Kind) bool {
	return k == Rectangle || k == Image || k == Frame
}

// Shape is the subset of a diagram shape's geometry the router needs. It is
// opaque beyond these fields (spec.md §3): the router never interprets
// shape-specific content.
type Shape struct {
	ID                  string
	X, Y, Width, Height float64
	Angle               float64
	Kind                Kind
}

// Center returns the shape's geometric center, the point rotation is about.
func (s Shape) Center() geom.Point {
	return geom.Point{X: s.X + s.Width/2, Y: s.Y + s.Height/2}
}

// LocalBounds returns the shape's unrotated axis-aligned extent.
func (s Shape) LocalBounds() geom.Bounds {
	return geom.Bounds{XMin: s.X, YMin: s.Y, XMax: s.X + s.Width, YMax: s.Y + s.Height}
}

// AABB returns the shape's axis-aligned bounding box, accounting for
// rotation about its center: the four corners of LocalBounds are rotated by
// Angle and then re-enclosed.
func (s Shape) AABB() geom.Bounds {
	if s.Angle == 0 {
		return s.LocalBounds()
	}
	c := s.Center()
	lb := s.LocalBounds()
	corners := [4]geom.Point{
		{X: lb.XMin, Y: lb.YMin},
		{X: lb.XMax, Y: lb.YMin},
		{X: lb.XMax, Y: lb.YMax},
		{X: lb.XMin, Y: lb.YMax},
	}
	sin, cos := math.Sincos(s.Angle)
	b := geom.Bounds{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
	for _, p := range corners {
		dx, dy := p.X-c.X, p.Y-c.Y
		rx := dx*cos - dy*sin + c.X
		ry := dx*sin + dy*cos + c.Y
		b.XMin = math.Min(b.XMin, rx)
		b.YMin = math.Min(b.YMin, ry)
		b.XMax = math.Max(b.XMax, rx)
		b.YMax = math.Max(b.YMax, ry)
	}
	return b
}

// Binding associates an arrow endpoint with a shape and a parameterized
// point on that shape's local bounding box (spec.md §3).
type Binding struct {
	ElementID      string
	FixedX, FixedY float64 // in [0, 1]
}

// PointOn resolves b against s's local bounding box, before any outline
// snapping is applied.
func (b Binding) PointOn(s Shape) geom.Point {
	lb := s.LocalBounds()
	return geom.Point{
		X: lb.XMin + b.FixedX*lb.Width(),
		Y: lb.YMin + b.FixedY*lb.Height(),
	}
}

// Arrow is the router's input/output entity (spec.md §3). Points are
// arrow-local; Points[0] is (0,0) by convention of the caller.
type Arrow struct {
	ID                       string
	X, Y, Angle              float64
	Points                   []geom.Point
	StartBinding, EndBinding *Binding
}

// Update is the mutation the router hands to a MutationSink once routing
// completes (spec.md §6).
type Update struct {
	Points                   []geom.Point
	X, Y, Width, Height      float64
	Angle                    float64
	Roundness                *float64
	StartBinding, EndBinding *Binding
}

// Store is the read-only scene surface the router queries (spec.md §6):
// lookup by id, iterate non-deleted shapes.
type Store interface {
	Shape(id string) (Shape, bool)
	NonDeleted() []Shape
}

// OutlineSnapper is the hit-testing / snap-to-outline surface the router
// delegates to (spec.md §6). Bit-exact outputs are outside this spec; the
// router only relies on the documented contracts (endpoint.go).
type OutlineSnapper interface {
	SnapToOutline(p geom.Point, s Shape) geom.Point
	DistanceToShape(p geom.Point, s Shape) float64
	AvoidCorner(p geom.Point, s Shape) geom.Point
	SnapToMid(p geom.Point, s Shape) geom.Point
	HoveredShapeAt(p geom.Point, shapes []Shape, fullyInside bool) (Shape, bool)
}

// MutationSink applies a routing result back onto the arrow entity
// (spec.md §6's "arrow-entity mutation sink").
type MutationSink interface {
	Apply(arrowID string, update Update, informMutation bool)
}

// Memory is a small in-memory Store + MutationSink used by this module's own
// tests and examples. It is not part of the production contract: a real
// diagram editor supplies its own scene and mutation sink.
type Memory struct {
	shapes  map[string]Shape
	applied map[string]Update
}

// NewMemory returns an empty in-memory scene.
func NewMemory() *Memory {
	return &Memory{shapes: make(map[string]Shape), applied: make(map[string]Update)}
}

// AddShape inserts s, assigning a random ID via uuid.NewString when s.ID is
// empty, and returns the (possibly assigned) ID.
func (m *Memory) AddShape(s Shape) string {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	m.shapes[s.ID] = s
	return s.ID
}

// Shape implements Store.
func (m *Memory) Shape(id string) (Shape, bool) {
	s, ok := m.shapes[id]
	return s, ok
}

// NonDeleted implements Store. Memory never marks shapes deleted, so this
// returns every shape that was added.
func (m *Memory) NonDeleted() []Shape {
	out := make([]Shape, 0, len(m.shapes))
	for _, s := range m.shapes {
		out = append(out, s)
	}
	return out
}

// Apply implements MutationSink by recording the update for later
// inspection (Memory.LastUpdate).
func (m *Memory) Apply(arrowID string, update Update, informMutation bool) {
	m.applied[arrowID] = update
}

// LastUpdate returns the most recent Update applied to arrowID, if any.
func (m *Memory) LastUpdate(arrowID string) (Update, bool) {
	u, ok := m.applied[arrowID]
	return u, ok
}

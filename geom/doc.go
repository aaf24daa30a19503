// Package geom defines the two-dimensional primitives shared across the
// elbow router: points, vectors, axis-aligned bounding boxes, line segments,
// and the four-way Heading enum that every other package routes by.
//
// What:
//
//   - Point / Vector: a pair of float64 coordinates. Vector reuses Point's
//     representation (spec.md §3 declares them identical shapes).
//   - Heading: one of the four unit axis directions (Up, Right, Down, Left).
//   - Bounds: an axis-aligned bounding box (xMin, yMin, xMax, yMax).
//   - LineSegment: an ordered pair of points.
//
// Why:
//
//   - Every downstream package (heading, endpoint, obstacle, grid, astar,
//     postprocess) works in terms of these primitives; obstacle, grid,
//     astar and postprocess know nothing of shapes, arrows, or scenes,
//     while heading and endpoint also take scene shapes.
//
// Errors: none. All operations here are total over their domain.
package geom

// Package obstacle constructs the two dynamic axis-aligned obstacle
// bounding boxes the A* router routes around (spec.md §4.3).
package obstacle

import "github.com/pkg/errors"

// ErrDegenerateBounds indicates the generator produced a box that violates
// the XMin<=XMax / YMin<=YMax invariant (spec.md §3) — an internal logic
// error, not a caller error, since every well-formed Endpoint input keeps
// the invariant intact.
var ErrDegenerateBounds = errors.New("obstacle: generated bounds are degenerate")

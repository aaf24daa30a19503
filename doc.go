// Package elbow wires the geom, heading, endpoint, obstacle, grid, pqueue,
// astar and postprocess packages into the routing entry point a diagram
// editor actually calls: Route takes an arrow, a scene, and the arrow's
// proposed new endpoints, and either applies a new elbowed polyline through
// the supplied MutationSink or leaves the arrow untouched (spec.md §6–§7).
//
// Route is a pure function of its arguments plus whatever the Store and
// OutlineSnapper collaborators report; it keeps no state between calls and
// is safe to call on every pointer-move during a drag.
package elbow

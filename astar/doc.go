// Package astar implements the Manhattan A* search over a routing grid
// (spec.md §4.5): a custom cost function that cubically penalizes direction
// changes, a closed-form turn-count heuristic, and movement restrictions
// that forbid reversing and forbid entering the start/end shapes from the
// wrong side.
package astar

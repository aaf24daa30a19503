// Package grid builds the sparse routing lattice the A* router searches
// (spec.md §4.4): the row×col grid of Nodes addressed by the sorted union of
// every significant x- and y-coordinate in play for one routing call.
package grid

// Package pqueue implements the binary min-heap the A* router uses as its
// open set (spec.md §4.7): push, pop-min, and rescore an already-queued
// element after its score has decreased.
package pqueue

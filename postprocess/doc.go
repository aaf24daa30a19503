// Package postprocess turns an A* node path into the final arrow update:
// collinear-point simplification, then conversion from world coordinates to
// arrow-local coordinates (spec.md §4.6).
package postprocess

// Package heading classifies the outward direction from a shape's center
// through a given point into one of geom's four headings (spec.md §4.1).
//
// Non-diamond shapes are classified by testing the point against the four
// center-anchored triangles formed by the shape's (outward-scaled) corners.
// Diamonds get their own path: a point outside the axis-aligned extent on
// exactly one side resolves directly to that side; otherwise the point is
// rotated back by the shape's angle about its center and classified by the
// edge-angle of the result.
package heading

// Package endpoint resolves a raw arrow endpoint to a global point and an
// outward heading, optionally snapping to a shape's outline (spec.md §4.2).
package endpoint

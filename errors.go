package elbow

import "errors"

// Sentinel errors Route can return. Per spec.md §7, these are the only
// failure modes that are actually errors — "no route" and the other two
// error classes are not, and are handled by logging or silent fallback
// instead (see Route).
var (
	// ErrNilStore is returned when sc is nil.
	ErrNilStore = errors.New("elbow: scene store is nil")
	// ErrNilSnapper is returned when snapper is nil.
	ErrNilSnapper = errors.New("elbow: outline snapper is nil")
	// ErrNilSink is returned when sink is nil.
	ErrNilSink = errors.New("elbow: mutation sink is nil")
	// ErrEmptyPoints is returned when nextPoints has no elements to route
	// between.
	ErrEmptyPoints = errors.New("elbow: nextPoints is empty")
	// ErrNoGridNode indicates Build's coordinate sets didn't contain a
	// resolved endpoint or its dongle projection — a logic error in this
	// package's grid wiring, not a caller mistake.
	ErrNoGridNode = errors.New("elbow: no grid node at resolved endpoint")
)

package grid

import "github.com/arrowkit/elbow/geom"

// Node is one cell of the routing lattice (spec.md §3). G is cost-so-far, H
// the heuristic estimate, F = G+H. Parent forms a tree rooted at the start
// node during search; it indexes back into the owning Grid's Data slice
// rather than holding a pointer, so the tree cannot cycle and the whole grid
// is discarded in one step when the routing call returns (spec.md §9).
type Node struct {
	Pos      geom.Point
	Col, Row int
	G, H, F  float64
	Closed   bool
	Visited  bool
	Parent   int // index into Grid.Data, or -1
}

// NoParent is the sentinel Parent value for a node with no predecessor.
const NoParent = -1

// Score returns n.F, satisfying pqueue.Scorer so *Node can be pushed
// directly onto the router's priority queue.
func (n *Node) Score() float64 { return n.F }

// Grid is the row×col lattice of Nodes, row-major: Data[row*Col+col]
// addresses the node at (col, row).
type Grid struct {
	Row, Col int
	Data     []Node
}

// At returns a pointer to the node at (col, row), for in-place mutation
// during search. The address is not validated: it panics only when the flat
// index falls outside Data, and an out-of-range column on a valid row
// yields a node of a neighbouring row (Neighbor checks Contains first).
func (g *Grid) At(col, row int) *Node {
	return &g.Data[row*g.Col+col]
}

// Contains reports whether (col, row) is a valid address in g.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.Col && row >= 0 && row < g.Row
}

// Index returns the flat Data index for (col, row).
func (g *Grid) Index(col, row int) int {
	return row*g.Col + col
}

// Find locates the node at point p by exact coordinate equality. It relies
// on p being one of the very coordinates Build inserted into its axis sets
// — never a value recomputed by arithmetic — so bit-exact float comparison
// is safe (spec.md §9 Open Question #3). The grid is small enough that a
// linear scan is the simplest correct approach.
func (g *Grid) Find(p geom.Point) (*Node, bool) {
	for i := range g.Data {
		if g.Data[i].Pos.Equal(p) {
			return &g.Data[i], true
		}
	}
	return nil, false
}

// Neighbor returns the node adjacent to n in direction h, or nil if n is on
// the grid's edge in that direction.
func (g *Grid) Neighbor(n *Node, h geom.Heading) *Node {
	col, row := n.Col, n.Row
	switch h {
	case geom.Up:
		row--
	case geom.Down:
		row++
	case geom.Left:
		col--
	case geom.Right:
		col++
	}
	if !g.Contains(col, row) {
		return nil
	}
	return g.At(col, row)
}

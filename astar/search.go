package astar

import (
	"github.com/arrowkit/elbow/geom"
	"github.com/arrowkit/elbow/grid"
	"github.com/arrowkit/elbow/pqueue"
)

// Search runs Manhattan A* from start to end over g (spec.md §4.5). start
// and end are grid nodes already resolved by the caller — dongle
// substitution and node banning (marking a node Closed so the search can't
// cross into a bound shape) both happen before Search is called; Search
// itself only ever reads startHeading/endHeading to shape cost and the
// movement-legality checks. obstacles is the set of dynamic AABBs a
// candidate step's midpoint must not fall inside.
//
// Returns the path as a slice of nodes from start to end, and false if the
// heap empties before end is reached (spec.md §7, "no route").
func Search(g *grid.Grid, start, end *grid.Node, startHeading, endHeading geom.Heading, obstacles []geom.Bounds) ([]*grid.Node, bool) {
	start.G = 0
	start.H = geom.Manhattan(start.Pos, end.Pos)
	start.F = start.G + start.H
	start.Parent = grid.NoParent
	start.Visited = true

	bendMultiplier := geom.Manhattan(start.Pos, end.Pos)
	bendPenalty := bendMultiplier * bendMultiplier * bendMultiplier
	heuristicScale := bendMultiplier * bendMultiplier

	pq := pqueue.New()
	pq.Push(start)

	for pq.Len() > 0 {
		cur := pq.Pop().(*grid.Node)
		if cur.Closed {
			continue
		}
		if cur == end {
			return reconstruct(g, cur), true
		}
		cur.Closed = true

		prevDir := startHeading
		if cur.Parent != grid.NoParent {
			prevDir = geom.HeadingBetween(g.Data[cur.Parent].Pos, cur.Pos)
		}

		for i := 0; i < 4; i++ {
			dir := geom.FromIndex(i)
			n := g.Neighbor(cur, dir)
			if n == nil || n.Closed {
				continue
			}

			mid := geom.Midpoint(cur.Pos, n.Pos)
			if insideAny(mid, obstacles) {
				continue
			}

			if dir == prevDir.Reverse() {
				continue
			}
			if n.Col == start.Col && n.Row == start.Row && dir == startHeading {
				continue
			}
			if n.Col == end.Col && n.Row == end.Row && dir == endHeading {
				continue
			}

			step := geom.Manhattan(cur.Pos, n.Pos)
			if dir != prevDir {
				step += bendPenalty
			}
			gNew := cur.G + step

			if n.Visited && gNew >= n.G {
				continue
			}
			wasVisited := n.Visited

			n.G = gNew
			n.H = geom.Manhattan(n.Pos, end.Pos) + estimatedBends(n.Pos, end.Pos, dir, endHeading)*heuristicScale
			n.F = n.G + n.H
			n.Parent = g.Index(cur.Col, cur.Row)
			n.Visited = true

			if wasVisited {
				pq.RescoreElement(n)
			} else {
				pq.Push(n)
			}
		}
	}

	return nil, false
}

func reconstruct(g *grid.Grid, end *grid.Node) []*grid.Node {
	var path []*grid.Node
	for cur := end; ; {
		path = append(path, cur)
		if cur.Parent == grid.NoParent {
			break
		}
		cur = &g.Data[cur.Parent]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func insideAny(p geom.Point, obstacles []geom.Bounds) bool {
	for _, b := range obstacles {
		if p.X > b.XMin && p.X < b.XMax && p.Y > b.YMin && p.Y < b.YMax {
			return true
		}
	}
	return false
}

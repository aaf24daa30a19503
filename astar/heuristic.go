package astar

import "github.com/arrowkit/elbow/geom"

// estimatedBends returns the turn count the A* heuristic charges for n
// (currently heading dir) against end and endHeading, looked up from a
// closed-form table on the two headings and their relative position
// (spec.md §4.5, §8's heuristic table). It is not a lower bound on the
// turns of a path Search accepts: for dir=Right, endHeading=Left with n on
// end's row and left of it, it returns 4 although a straight path is legal.
func estimatedBends(n, end geom.Point, dir, endHeading geom.Heading) float64 {
	sameAxis := dir.Horizontal() == endHeading.Horizontal()

	if sameAxis {
		if dir == endHeading {
			if behind(n, end, dir) {
				if aligned(n, end, dir) {
					return 0
				}
				return 2
			}
			return 4
		}
		// dir is the reverse of endHeading: the only other same-axis case.
		if aligned(n, end, dir) {
			return 4
		}
		return 1
	}

	// dir and endHeading are on perpendicular axes.
	if behind(n, end, dir) && behind(n, end, endHeading) {
		return 1
	}
	return 2
}

// behind reports whether n lies on the side of end that dir moves away
// from — i.e. continuing to move in dir from n brings it closer to end
// along that axis.
func behind(n, end geom.Point, dir geom.Heading) bool {
	switch dir {
	case geom.Right:
		return n.X < end.X
	case geom.Left:
		return n.X > end.X
	case geom.Up:
		return n.Y > end.Y
	case geom.Down:
		return n.Y < end.Y
	default:
		return false
	}
}

// aligned reports whether n and end share the same coordinate on the axis
// perpendicular to dir.
func aligned(n, end geom.Point, dir geom.Heading) bool {
	if dir.Horizontal() {
		return n.Y == end.Y
	}
	return n.X == end.X
}

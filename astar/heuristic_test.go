package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrowkit/elbow/geom"
)

func TestEstimatedBendsSpotChecks(t *testing.T) {
	cases := []struct {
		name          string
		dir, endDir   geom.Heading
		n, end        geom.Point
		want          float64
	}{
		{
			name: "same heading aligned and behind",
			dir: geom.Right, endDir: geom.Right,
			n: geom.Point{X: 0, Y: 0}, end: geom.Point{X: 100, Y: 0},
			want: 0,
		},
		{
			name: "same heading not behind",
			dir: geom.Right, endDir: geom.Right,
			n: geom.Point{X: 100, Y: 5}, end: geom.Point{X: 100, Y: 0},
			want: 4,
		},
		{
			name: "perpendicular good quadrant",
			dir: geom.Up, endDir: geom.Right,
			n: geom.Point{X: 0, Y: 50}, end: geom.Point{X: 100, Y: 0},
			want: 1,
		},
		{
			name: "opposite heading aligned",
			dir: geom.Left, endDir: geom.Right,
			n: geom.Point{X: 50, Y: 0}, end: geom.Point{X: 100, Y: 0},
			want: 4,
		},
		{
			name: "same heading not behind, vertical",
			dir: geom.Up, endDir: geom.Up,
			n: geom.Point{X: 0, Y: 0}, end: geom.Point{X: 0, Y: 0},
			want: 4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := estimatedBends(tc.n, tc.end, tc.dir, tc.endDir)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEstimatedBendsSameHeadingBehindButMisaligned(t *testing.T) {
	got := estimatedBends(geom.Point{X: 0, Y: 10}, geom.Point{X: 100, Y: 0}, geom.Right, geom.Right)
	assert.Equal(t, float64(2), got)
}

func TestEstimatedBendsOppositeHeadingMisaligned(t *testing.T) {
	got := estimatedBends(geom.Point{X: 0, Y: 10}, geom.Point{X: 100, Y: 0}, geom.Left, geom.Right)
	assert.Equal(t, float64(1), got)
}

func TestEstimatedBendsPerpendicularBadQuadrant(t *testing.T) {
	got := estimatedBends(geom.Point{X: 200, Y: 50}, geom.Point{X: 100, Y: 0}, geom.Up, geom.Right)
	assert.Equal(t, float64(2), got)
}

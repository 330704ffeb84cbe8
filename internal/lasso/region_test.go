package lasso

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchBoard/internal/state"
)

func ringArea(sp state.Subpath) float64 {
	pg := state.Polygon{sp.Start}
	for _, seg := range sp.Segments {
		pg = append(pg, seg.To)
	}
	return pg.Area()
}

func TestRegionPathOrientsHoles(t *testing.T) {
	// outer wound clockwise, hole wound the same way
	outer := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 30}, {X: 30, Y: 30}, {X: 30, Y: 0}}
	hole := []geom.Point{{X: 10, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 10}}
	r := Region{poly: geom.Polygon{outer, hole}}

	p := r.Path()
	require.Len(t, p.Subpaths, 2)
	assert.Greater(t, ringArea(p.Subpaths[0]), 0.0)
	assert.Less(t, ringArea(p.Subpaths[1]), 0.0)
	for _, sp := range p.Subpaths {
		assert.True(t, sp.Closed)
	}
}

func TestRegionContoursDropClosingVertex(t *testing.T) {
	closed := square(0, 0, 2)
	closed = append(closed, closed[0])
	r := NewRegion(closed)
	require.Len(t, r.Contours(), 1)
	assert.Len(t, r.Contours()[0], 4)
}

func TestContains(t *testing.T) {
	sq := square(0, 0, 10)
	assert.True(t, contains(sq, state.Pt(5, 5)))
	assert.False(t, contains(sq, state.Pt(15, 5)))
	assert.False(t, contains(sq, state.Pt(-1, -1)))
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "Region{contours: 1, area: 100.00}", NewRegion(square(0, 0, 10)).String())
	assert.Equal(t, "Region{contours: 0, area: 0.00}", Region{}.String())
}

func TestUnionShapes(t *testing.T) {
	reversed := state.Polygon{state.Pt(0, 10), state.Pt(10, 10), state.Pt(10, 0), state.Pt(0, 0)}
	for _, tc := range []struct {
		name     string
		a, b     state.Polygon
		area     float64
		contours int
	}{
		{"same ring", square(0, 0, 10), square(0, 0, 10), 100, 1},
		{"reversed winding", square(0, 0, 10), reversed, 100, 1},
		{"shared edge", square(0, 0, 10), state.Polygon{state.Pt(10, 0), state.Pt(20, 0), state.Pt(20, 10), state.Pt(10, 10)}, 200, 1},
		{"contained", square(0, 0, 10), square(2, 2, 3), 100, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			u, ok := Union(NewRegion(tc.a), NewRegion(tc.b))
			require.True(t, ok)
			assert.InDelta(t, tc.area, u.Area(), 1e-6)
			assert.Len(t, u.Contours(), tc.contours)
		})
	}
}

func TestUnionClosingAHole(t *testing.T) {
	u := state.Polygon{
		state.Pt(0, 0), state.Pt(30, 0), state.Pt(30, 30), state.Pt(20, 30),
		state.Pt(20, 10), state.Pt(10, 10), state.Pt(10, 30), state.Pt(0, 30),
	}
	bar := state.Polygon{state.Pt(0, 25), state.Pt(30, 25), state.Pt(30, 40), state.Pt(0, 40)}

	r, ok := Union(NewRegion(u), NewRegion(bar))
	require.True(t, ok)
	assert.InDelta(t, 1050, r.Area(), 1e-6)
	require.Len(t, r.Contours(), 2)

	var outer, hole float64
	for _, sp := range r.Path().Subpaths {
		if a := ringArea(sp); a > 0 {
			outer = a
		} else {
			hole = a
		}
	}
	assert.InDelta(t, 1200, outer, 1e-6)
	assert.InDelta(t, -150, hole, 1e-6)
}

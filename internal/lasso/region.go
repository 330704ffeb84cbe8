// Package lasso keeps the persistent selection region built up from closed
// lasso gestures.
package lasso

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"SketchBoard/internal/state"
)

// Region is an immutable selection region made of one or more contours.
// The zero value is the empty region.
type Region struct {
	poly geom.Polygon
}

// NewRegion builds a single-contour region from a lasso ring.
func NewRegion(pg state.Polygon) Region {
	if len(pg) == 0 {
		return Region{}
	}
	path := make([]geom.Point, 0, len(pg))
	for _, p := range pg {
		path = append(path, geom.Point{X: p.X, Y: p.Y})
	}
	return Region{poly: geom.Polygon{path}}
}

func (r Region) Empty() bool { return len(r.poly) == 0 }

// Area is the covered area; holes are subtracted.
func (r Region) Area() float64 {
	if r.Empty() {
		return 0
	}
	return math.Abs(r.poly.Area())
}

// Contours returns a copy of every ring, without a repeated closing vertex.
func (r Region) Contours() []state.Polygon {
	out := make([]state.Polygon, 0, len(r.poly))
	for _, path := range r.poly {
		ring := make(state.Polygon, 0, len(path))
		for _, p := range path {
			ring = append(ring, state.Pt(p.X, p.Y))
		}
		if n := len(ring); n > 1 && ring[0].Eq(ring[n-1]) {
			ring = ring[:n-1]
		}
		out = append(out, ring)
	}
	return out
}

// Path describes the region for filling. Outer rings are wound with
// positive area and holes with negative area, so non-zero and even-odd
// rasterizers agree.
func (r Region) Path() state.Path {
	rings := r.Contours()
	p := state.Path{Rule: state.EvenOdd}
	for i, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		depth := 0
		for j, other := range rings {
			if i != j && contains(other, ring[0]) {
				depth++
			}
		}
		if hole := depth%2 == 1; (ring.Area() < 0) != hole {
			ring = reverse(ring)
		}
		p.Subpaths = append(p.Subpaths, state.PolygonPath(ring, true).Subpaths...)
	}
	return p
}

// contains reports whether pt is strictly inside ring (crossing test).
func contains(ring state.Polygon, pt state.Point) bool {
	in := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func reverse(ring state.Polygon) state.Polygon {
	out := make(state.Polygon, len(ring))
	for i, p := range ring {
		out[len(ring)-1-i] = p
	}
	return out
}

func (r Region) String() string {
	return fmt.Sprintf("Region{contours: %d, area: %.2f}", len(r.poly), r.Area())
}

// Union returns the region covered by either a or b. ok is false when the
// boolean operation failed or produced nothing; callers keep their prior
// region in that case.
func Union(a, b Region) (u Region, ok bool) {
	switch {
	case a.Empty():
		return b, !b.Empty()
	case b.Empty():
		return a, true
	}
	defer func() {
		if rec := recover(); rec != nil {
			u, ok = Region{}, false
		}
	}()
	var out geom.Polygon
	for _, pg := range a.poly.Union(b.poly).Polygons() {
		out = append(out, pg...)
	}
	if len(out) == 0 {
		return Region{}, false
	}
	return Region{poly: out}, true
}

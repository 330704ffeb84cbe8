package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchBoard/internal/state"
)

func line(n int, step float64) []state.Point {
	pts := make([]state.Point, n)
	for i := range pts {
		pts[i] = state.Pt(float64(i)*step, 0)
	}
	return pts
}

func requireFinite(t *testing.T, pg state.Polygon) {
	t.Helper()
	for i, p := range pg {
		require.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "NaN at %d", i)
		require.False(t, math.IsInf(p.X, 0) || math.IsInf(p.Y, 0), "Inf at %d", i)
	}
}

func TestOutlineEmpty(t *testing.T) {
	assert.Empty(t, Outline(nil, DefaultOptions()))
	assert.Empty(t, Outline([]state.Point{}, DefaultOptions()))
}

func TestOutlineZeroSize(t *testing.T) {
	o := DefaultOptions()
	o.Size = 0
	assert.Empty(t, Outline(line(5, 10), o))
}

func TestOutlineSinglePointIsCappedBlob(t *testing.T) {
	c := state.Pt(50, 50)
	o := DefaultOptions()
	out := Outline([]state.Point{c}, o)
	// one rail point per side plus both round caps
	require.Len(t, out, 2+startCapSteps+endCapSteps-1)
	requireFinite(t, out)

	for _, p := range out {
		assert.LessOrEqual(t, p.Dist(c), o.Size)
	}
	assert.Greater(t, math.Abs(out.Area()), 0.0)
}

func TestOutlineStationarySamplesDegradeToDot(t *testing.T) {
	c := state.Pt(3, 4)
	out := Outline([]state.Point{c, c, c}, DefaultOptions())
	assert.Len(t, out, startCapSteps)
	requireFinite(t, out)
}

func TestOutlineHasBothCaps(t *testing.T) {
	for _, samples := range [][]state.Point{
		line(2, 30),
		line(3, 10),
		line(20, 4),
		{state.Pt(0, 0), state.Pt(10, 0), state.Pt(10, 10)},
	} {
		out := Outline(samples, DefaultOptions())
		requireFinite(t, out)
		assert.GreaterOrEqual(t, len(out), startCapSteps+endCapSteps-1+2)
	}
}

func TestOutlineWidthBoundedBySize(t *testing.T) {
	o := DefaultOptions()
	samples := line(30, 5)
	out := Outline(samples, o)
	require.NotEmpty(t, out)
	for _, p := range out {
		assert.LessOrEqual(t, math.Abs(p.Y), o.Size, "point %v too far from a horizontal centerline", p)
	}
}

func TestOutlineRecomputedFromFullHistory(t *testing.T) {
	samples := []state.Point{state.Pt(0, 0), state.Pt(12, 3), state.Pt(20, 15), state.Pt(35, 18)}
	a := Outline(samples, DefaultOptions())
	b := Outline(append([]state.Point(nil), samples...), DefaultOptions())
	assert.Equal(t, a, b)

	longer := Outline(append(samples, state.Pt(50, 30)), DefaultOptions())
	assert.NotEqual(t, a, longer)
}

func TestOutlineSharpCorner(t *testing.T) {
	samples := []state.Point{}
	for i := 0; i <= 10; i++ {
		samples = append(samples, state.Pt(float64(i)*5, 0))
	}
	for i := 9; i >= 0; i-- {
		samples = append(samples, state.Pt(float64(i)*5, 0))
	}
	out := Outline(samples, DefaultOptions())
	requireFinite(t, out)
	assert.GreaterOrEqual(t, len(out), startCapSteps+endCapSteps-1+2*(cornerSteps+1))
}

func TestOutlineTaperedEnds(t *testing.T) {
	o := DefaultOptions()
	o.Start = Cap{Taper: 20}
	o.End = Cap{Taper: 20}
	samples := line(20, 5)
	out := Outline(samples, o)
	requireFinite(t, out)
	require.NotEmpty(t, out)
	// a tapered end collapses onto the last sample
	assert.Contains(t, out, samples[len(samples)-1])
}

func TestOutlineFlatCaps(t *testing.T) {
	o := DefaultOptions()
	o.Start.Cap = false
	o.End.Cap = false
	out := Outline(line(10, 6), o)
	requireFinite(t, out)
	capped := Outline(line(10, 6), DefaultOptions())
	assert.Less(t, len(out), len(capped))
}

func TestEasingByName(t *testing.T) {
	e, err := EasingByName("")
	require.NoError(t, err)
	assert.Equal(t, 0.25, e(0.25))

	for _, name := range EasingNames() {
		e, err := EasingByName(name)
		require.NoError(t, err, name)
		assert.InDelta(t, 0, e(0), 1e-12, name)
		assert.InDelta(t, 1, e(1), 1e-12, name)
	}

	_, err = EasingByName("bounce")
	assert.ErrorContains(t, err, "bounce")
}

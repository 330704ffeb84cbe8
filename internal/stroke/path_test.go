package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SketchBoard/internal/state"
)

func TestToSmoothPathEmpty(t *testing.T) {
	p := ToSmoothPath(nil)
	assert.True(t, p.Empty())
	assert.Empty(t, p.Subpaths)
}

func TestToSmoothPathMidpoints(t *testing.T) {
	square := state.Polygon{state.Pt(0, 0), state.Pt(10, 0), state.Pt(10, 10), state.Pt(0, 10)}
	p := ToSmoothPath(square)

	require.Len(t, p.Subpaths, 1)
	sp := p.Subpaths[0]
	assert.True(t, sp.Closed)
	assert.Equal(t, square[0], sp.Start)
	assert.Equal(t, []state.Segment{
		{Kind: state.SegQuad, Ctrl: state.Pt(0, 0), To: state.Pt(5, 0)},
		{Kind: state.SegQuad, Ctrl: state.Pt(10, 0), To: state.Pt(10, 5)},
		{Kind: state.SegQuad, Ctrl: state.Pt(10, 10), To: state.Pt(5, 10)},
		{Kind: state.SegQuad, Ctrl: state.Pt(0, 10), To: state.Pt(0, 5)},
	}, sp.Segments)
}

func TestToSmoothPathSegmentCount(t *testing.T) {
	for _, samples := range [][]state.Point{
		{state.Pt(1, 1)},
		line(4, 7),
		line(25, 3),
	} {
		outline := Outline(samples, DefaultOptions())
		assert.Equal(t, len(outline), ToSmoothPath(outline).SegmentCount())
	}
}

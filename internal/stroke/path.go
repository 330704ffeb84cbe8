package stroke

import "SketchBoard/internal/state"

// ToSmoothPath converts a closed outline into one closed subpath of
// quadratic segments. Each vertex becomes the control point of a curve that
// ends halfway to the next vertex, wrapping around to the first.
func ToSmoothPath(outline state.Polygon) state.Path {
	if len(outline) == 0 {
		return state.Path{}
	}
	sp := state.Subpath{
		Start:    outline[0],
		Segments: make([]state.Segment, len(outline)),
		Closed:   true,
	}
	for i, p := range outline {
		next := outline[(i+1)%len(outline)]
		sp.Segments[i] = state.Segment{Kind: state.SegQuad, Ctrl: p, To: p.Mid(next)}
	}
	return state.Path{Subpaths: []state.Subpath{sp}, Rule: state.NonZero}
}

package tool

import "SketchBoard/internal/state"

// Session is the state of one press-drag-release gesture. Only the part
// matching the gesture's tool is ever populated.
type Session struct {
	active bool
	tool   Kind
	stamp  state.Stamp

	samples []state.Point
	anchor  state.Point
	rect    state.Rect
	lasso   state.Polygon
}

func (s Session) Active() bool           { return s.active }
func (s Session) Tool() Kind             { return s.tool }
func (s Session) Stamp() state.Stamp     { return s.stamp }
func (s Session) Rect() state.Rect       { return s.rect }
func (s Session) Samples() []state.Point { return s.samples }
func (s Session) Lasso() state.Polygon   { return s.lasso }

// Begin starts a gesture for tool at p. The tool is fixed until End.
func (s *Session) Begin(tool Kind, p state.Point, stamp state.Stamp) {
	*s = Session{active: true, tool: tool, stamp: stamp}
	switch tool {
	case Draw:
		s.samples = []state.Point{}
	case Rectangle, Select:
		s.anchor = p
		s.rect = state.Rect{Anchor: p}
	case Lasso:
		s.lasso = state.Polygon{p}
	}
}

// Update feeds one move sample. It reports false when no gesture is active.
func (s *Session) Update(p state.Point) bool {
	if !s.active {
		return false
	}
	switch s.tool {
	case Draw:
		s.samples = append(s.samples, p)
	case Rectangle, Select:
		s.rect = state.RectFrom(s.anchor, p)
	case Lasso:
		s.lasso = append(s.lasso, p)
	}
	return true
}

// End finishes the gesture and returns to idle. For a lasso gesture it
// returns the closed ring; the closing edge back to the first vertex is
// implicit.
func (s *Session) End() (tool Kind, ring state.Polygon, ok bool) {
	if !s.active {
		return s.tool, nil, false
	}
	tool, ring = s.tool, s.lasso
	*s = Session{tool: tool, stamp: s.stamp}
	return tool, ring, true
}

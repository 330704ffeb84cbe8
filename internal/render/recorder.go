package render

import (
	"image/color"

	"SketchBoard/internal/state"
)

// Recorder keeps every call it receives.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) add(op Op) {
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Clear() { r.add(NewOp(OpClear, nil)) }

func (r *Recorder) FillPolygon(p state.Path, c color.Color) {
	r.add(PathOp(OpFillPolygon, p, c))
}

func (r *Recorder) StrokePolygon(p state.Path, c color.Color) {
	r.add(PathOp(OpStrokePolygon, p, c))
}

func (r *Recorder) FillRect(rect state.Rect, c color.Color) {
	r.add(RectOp(OpFillRect, rect, c))
}

func (r *Recorder) StrokeRect(rect state.Rect, c color.Color) {
	r.add(RectOp(OpStrokeRect, rect, c))
}

// Kinds lists the recorded op kinds in order.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

func (r *Recorder) Reset() { r.Ops = nil }

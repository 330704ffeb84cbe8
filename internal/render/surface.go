// Package render defines the drawing target the tools paint on, plus a
// raster backend, a recorder and a fan-out.
package render

import (
	"image/color"

	"SketchBoard/internal/state"
)

// Surface receives drawing operations. Calls are made from one goroutine.
type Surface interface {
	Clear()
	FillPolygon(p state.Path, c color.Color)
	StrokePolygon(p state.Path, c color.Color)
	FillRect(r state.Rect, c color.Color)
	StrokeRect(r state.Rect, c color.Color)
}

type OpKind string

const (
	OpClear         OpKind = "clear"
	OpFillPolygon   OpKind = "fill_polygon"
	OpStrokePolygon OpKind = "stroke_polygon"
	OpFillRect      OpKind = "fill_rect"
	OpStrokeRect    OpKind = "stroke_rect"
)

// Op is one surface call in a form that can be stored or sent.
type Op struct {
	Kind  OpKind      `json:"op"`
	Path  *state.Path `json:"path,omitempty"`
	Rect  *state.Rect `json:"rect,omitempty"`
	Color color.NRGBA `json:"color"`
}

func NewOp(kind OpKind, c color.Color) Op {
	op := Op{Kind: kind}
	if c != nil {
		op.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return op
}

func PathOp(kind OpKind, p state.Path, c color.Color) Op {
	op := NewOp(kind, c)
	op.Path = &p
	return op
}

func RectOp(kind OpKind, r state.Rect, c color.Color) Op {
	op := NewOp(kind, c)
	op.Rect = &r
	return op
}

// Replay issues op against s.
func Replay(s Surface, op Op) {
	switch op.Kind {
	case OpClear:
		s.Clear()
	case OpFillPolygon:
		if op.Path != nil {
			s.FillPolygon(*op.Path, op.Color)
		}
	case OpStrokePolygon:
		if op.Path != nil {
			s.StrokePolygon(*op.Path, op.Color)
		}
	case OpFillRect:
		if op.Rect != nil {
			s.FillRect(*op.Rect, op.Color)
		}
	case OpStrokeRect:
		if op.Rect != nil {
			s.StrokeRect(*op.Rect, op.Color)
		}
	}
}

// Tee forwards every call to each surface in order.
type Tee []Surface

var _ Surface = Tee(nil)

func (t Tee) Clear() {
	for _, s := range t {
		s.Clear()
	}
}

func (t Tee) FillPolygon(p state.Path, c color.Color) {
	for _, s := range t {
		s.FillPolygon(p, c)
	}
}

func (t Tee) StrokePolygon(p state.Path, c color.Color) {
	for _, s := range t {
		s.StrokePolygon(p, c)
	}
}

func (t Tee) FillRect(r state.Rect, c color.Color) {
	for _, s := range t {
		s.FillRect(r, c)
	}
}

func (t Tee) StrokeRect(r state.Rect, c color.Color) {
	for _, s := range t {
		s.StrokeRect(r, c)
	}
}

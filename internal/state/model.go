package state

import (
	"image/color"
	"math"
)

// Accent is the opaque stroke and rectangle color. AccentTranslucent is the
// same hue at 50% alpha, used for live previews and the selection region.
var (
	Accent            = color.NRGBA{G: 128, A: 255}
	AccentTranslucent = color.NRGBA{G: 128, A: 128}
)

// Point is a surface-local coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point    { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point    { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(s float64) Point  { return Point{p.X * s, p.Y * s} }
func (p Point) Dot(q Point) float64  { return p.X*q.X + p.Y*q.Y }
func (p Point) Len() float64         { return math.Hypot(p.X, p.Y) }
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }
func (p Point) Mid(q Point) Point    { return p.Lerp(q, 0.5) }
func (p Point) Eq(q Point) bool      { return p.X == q.X && p.Y == q.Y }
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Mul(t))
}

func (p Point) Dist2(q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// Rect is anchored at the press point; Width and Height keep the drag
// direction and may be negative.
type Rect struct {
	Anchor Point   `json:"anchor"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFrom returns the rectangle spanned from anchor to p.
func RectFrom(anchor, p Point) Rect {
	return Rect{Anchor: anchor, Width: p.X - anchor.X, Height: p.Y - anchor.Y}
}

// Canon returns the top-left corner and the absolute size.
func (r Rect) Canon() (min Point, w, h float64) {
	min = r.Anchor
	w, h = r.Width, r.Height
	if w < 0 {
		min.X += w
		w = -w
	}
	if h < 0 {
		min.Y += h
		h = -h
	}
	return min, w, h
}

// Path traces the rectangle as a closed polygon starting at the anchor.
func (r Rect) Path() Path {
	a := r.Anchor
	return PolygonPath(Polygon{
		a,
		{a.X + r.Width, a.Y},
		{a.X + r.Width, a.Y + r.Height},
		{a.X, a.Y + r.Height},
	}, true)
}

// Polygon is an ordered ring of vertices. The closing edge is implicit.
type Polygon []Point

// Area returns the signed shoelace area.
func (pg Polygon) Area() float64 {
	if len(pg) < 3 {
		return 0
	}
	var a float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Distinct counts vertices that differ from their predecessor.
func (pg Polygon) Distinct() int {
	n := 0
	for i, p := range pg {
		if i == 0 || !p.Eq(pg[i-1]) {
			n++
		}
	}
	if n > 1 && pg[0].Eq(pg[len(pg)-1]) {
		n--
	}
	return n
}

type SegmentKind uint8

const (
	SegLine SegmentKind = iota
	SegQuad
)

// Segment continues a subpath to To. Ctrl is only meaningful for SegQuad.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Ctrl Point       `json:"ctrl"`
	To   Point       `json:"to"`
}

type Subpath struct {
	Start    Point     `json:"start"`
	Segments []Segment `json:"segments"`
	Closed   bool      `json:"closed"`
}

type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

// Path is a curve description made of one or more subpaths.
type Path struct {
	Subpaths []Subpath `json:"subpaths"`
	Rule     FillRule  `json:"rule"`
}

func (p Path) Empty() bool { return p.SegmentCount() == 0 }

func (p Path) SegmentCount() int {
	n := 0
	for _, sp := range p.Subpaths {
		n += len(sp.Segments)
	}
	return n
}

// PolygonPath returns a single straight-edged subpath through pts.
func PolygonPath(pts Polygon, closed bool) Path {
	if len(pts) == 0 {
		return Path{}
	}
	sp := Subpath{Start: pts[0], Closed: closed, Segments: make([]Segment, 0, len(pts)-1)}
	for _, p := range pts[1:] {
		sp.Segments = append(sp.Segments, Segment{Kind: SegLine, To: p})
	}
	return Path{Subpaths: []Subpath{sp}}
}

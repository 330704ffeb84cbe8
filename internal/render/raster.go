package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"SketchBoard/internal/state"
)

const miterLimit = 4 << 6

// Raster paints onto an in-memory RGBA image. Cleared pixels are
// transparent so a host can put its own background underneath.
type Raster struct {
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a width x height surface whose outlines are lineWidth
// units wide with round joins and caps.
func NewRaster(width, height int, lineWidth float64) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	r := &Raster{
		img:     img,
		filler:  rasterx.NewFiller(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		stroker: rasterx.NewStroker(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
	}
	r.stroker.SetStroke(fixed.Int26_6(lineWidth*64), miterLimit,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	return r
}

// Image is the backing image. It is updated in place.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillPolygon(p state.Path, c color.Color) {
	if p.Empty() {
		return
	}
	r.filler.Clear()
	r.filler.SetWinding(p.Rule == state.NonZero)
	trace(r.filler, p)
	r.filler.SetColor(c)
	r.filler.Draw()
}

func (r *Raster) StrokePolygon(p state.Path, c color.Color) {
	if p.Empty() {
		return
	}
	r.stroker.Clear()
	trace(r.stroker, p)
	r.stroker.SetColor(c)
	r.stroker.Draw()
}

func (r *Raster) FillRect(rect state.Rect, c color.Color) {
	r.FillPolygon(rect.Path(), c)
}

func (r *Raster) StrokeRect(rect state.Rect, c color.Color) {
	r.StrokePolygon(rect.Path(), c)
}

func trace(a rasterx.Adder, p state.Path) {
	for _, sp := range p.Subpaths {
		if len(sp.Segments) == 0 {
			continue
		}
		a.Start(toFixed(sp.Start))
		for _, seg := range sp.Segments {
			switch seg.Kind {
			case state.SegQuad:
				a.QuadBezier(toFixed(seg.Ctrl), toFixed(seg.To))
			default:
				a.Line(toFixed(seg.To))
			}
		}
		a.Stop(sp.Closed)
	}
}

func toFixed(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/state"
	"SketchBoard/internal/tool"
)

// BoardWidget shows the raster surface and turns primary-button gestures
// into controller calls.
type BoardWidget struct {
	widget.BaseWidget
	controller *tool.Controller
	image      *canvas.Image
	statusBar  *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

// NewBoardWidget displays surface, which the controller's render surface
// paints into.
func NewBoardWidget(c *tool.Controller, surface image.Image) *BoardWidget {
	img := canvas.NewImageFromImage(surface)
	img.FillMode = canvas.ImageFillOriginal
	img.ScaleMode = canvas.ImageScalePixels

	b := &BoardWidget{
		controller: c,
		image:      img,
		statusBar:  widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Tool() tool.Kind { return b.controller.Tool() }

func (b *BoardWidget) SetTool(k tool.Kind) {
	b.controller.SetTool(k)
	b.statusBar.SetText("Tool: " + toolLabel(k))
}

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.controller.Begin(toPoint(e.Position))
	b.image.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.controller.Update(toPoint(e.Position))
	b.image.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.release()
}

func (b *BoardWidget) DragEnd() { b.release() }

func (b *BoardWidget) release() {
	if !b.controller.Gesture().Active() {
		return
	}
	b.controller.End()
	b.image.Refresh()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.image.Move(fyne.NewPos(0, 0))
	r.board.image.Resize(r.board.image.MinSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size { return r.board.image.MinSize() }

func (r *boardWidgetRenderer) Refresh() {
	r.board.image.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

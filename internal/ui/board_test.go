package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
	"SketchBoard/internal/tool"
)

func newBoard(t *testing.T) (*BoardWidget, *tool.Controller, *render.Recorder) {
	t.Helper()
	test.NewTempApp(t)
	rec := &render.Recorder{}
	c := tool.NewController(rec, tool.DefaultConfig(), zaptest.NewLogger(t))
	return NewBoardWidget(c, image.NewRGBA(image.Rect(0, 0, 64, 48))), c, rec
}

func press(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func drag(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestBoardRoutesPointerEvents(t *testing.T) {
	b, c, rec := newBoard(t)
	b.SetTool(tool.Rectangle)

	b.MouseDown(press(5, 5, desktop.MouseButtonPrimary))
	b.Dragged(drag(15, 20))
	assert.True(t, c.Gesture().Active())

	b.MouseUp(press(15, 20, desktop.MouseButtonPrimary))
	b.DragEnd()
	assert.False(t, c.Gesture().Active())

	require.Equal(t, []render.OpKind{render.OpFillRect}, rec.Kinds())
	assert.Equal(t, state.Rect{Anchor: state.Pt(5, 5), Width: 10, Height: 15}, *rec.Ops[0].Rect)
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	b, c, rec := newBoard(t)
	b.MouseDown(press(5, 5, desktop.MouseButtonSecondary))
	b.Dragged(drag(10, 10))
	assert.False(t, c.Gesture().Active())
	assert.Empty(t, rec.Ops)
}

func TestBoardRendererLayersImageOverBackground(t *testing.T) {
	b, _, _ := newBoard(t)
	objs := test.WidgetRenderer(b).Objects()
	require.Len(t, objs, 2)
	assert.Same(t, b.image, objs[1])
}

func TestToolPickerSelectsTool(t *testing.T) {
	b, c, _ := newBoard(t)
	picker := newToolPicker(b)
	assert.Equal(t, "Draw", picker.Selected)
	assert.Equal(t, []string{"Draw", "Rectangle", "Select", "Lasso"}, picker.Options)

	picker.SetSelected("Lasso")
	assert.Equal(t, tool.Lasso, c.Tool())
	assert.Equal(t, "Tool: Lasso", b.StatusBar().Text)
}

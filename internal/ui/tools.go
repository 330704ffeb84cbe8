package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"SketchBoard/internal/tool"
)

func toolLabel(k tool.Kind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// newToolPicker offers one choice per tool; the selection applies to the
// next gesture.
func newToolPicker(board *BoardWidget) *widget.RadioGroup {
	labels := make([]string, 0, len(tool.Kinds()))
	kinds := make(map[string]tool.Kind)
	for _, k := range tool.Kinds() {
		labels = append(labels, toolLabel(k))
		kinds[toolLabel(k)] = k
	}
	picker := widget.NewRadioGroup(labels, func(label string) {
		if k, ok := kinds[label]; ok {
			board.SetTool(k)
		}
	})
	picker.Horizontal = true
	picker.Required = true
	picker.SetSelected(toolLabel(board.Tool()))
	return picker
}

func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		newToolPicker(board),
		layout.NewSpacer(),
	)
}

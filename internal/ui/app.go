package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the board window and blocks until it is closed.
func RunApp(title string, board *BoardWidget, width, height int) {
	myApp := app.New()
	myWindow := myApp.NewWindow(title)
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	content := container.NewBorder(NewToolbar(board), board.StatusBar(), nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

package ui

import (
	"HPaint/internal/config"
	"HPaint/internal/paint"
	"HPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// RunApp opens the paint window for board and blocks until it is closed.
func RunApp(cfg config.Config, board *paint.Board) {
	myApp := app.New()
	myWindow := myApp.NewWindow(config.WindowTitle)

	boardWidget := NewBoardWidget(board, cfg.Width, cfg.Height)
	toolbar := NewToolbar(boardWidget)
	board.OnAction = func(a state.Action) {
		toolbar.SetStatus(a.String() + " is not available")
	}

	registerShortcuts(myWindow.Canvas(), board)

	content := container.NewBorder(toolbar.Object(), nil, nil, nil, boardWidget)
	myWindow.SetContent(content)
	myWindow.Resize(content.MinSize())
	myWindow.ShowAndRun()
}

// registerShortcuts routes ctrl/cmd+z and ctrl/cmd+y to the board. Adding
// them as canvas shortcuts keeps the keys from reaching other widgets.
func registerShortcuts(c fyne.Canvas, board *paint.Board) {
	chords := []struct {
		name fyne.KeyName
		key  string
	}{
		{fyne.KeyZ, "z"},
		{fyne.KeyY, "y"},
	}
	for _, ch := range chords {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierControl, fyne.KeyModifierSuper} {
			chord := state.Chord{
				Key:  ch.key,
				Ctrl: mod == fyne.KeyModifierControl,
				Meta: mod == fyne.KeyModifierSuper,
			}
			c.AddShortcut(&desktop.CustomShortcut{KeyName: ch.name, Modifier: mod}, func(fyne.Shortcut) {
				board.HandleKey(chord)
			})
		}
	}
}

package ui

import (
	"fmt"
	"image/color"
	"log"

	"HPaint/internal/config"
	"HPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA())
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.White
	border.StrokeWidth = 2

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- Brush size buttons, drawn as a dot of the brush's indicator size ---
type brushSwatch struct {
	widget.BaseWidget
	Brush    state.BrushSize
	Diameter float32
	OnTapped func(state.BrushSize)
}

func newBrushSwatch(size state.BrushSize, tapped func(state.BrushSize)) *brushSwatch {
	cfg, _ := state.Brush(size)
	s := &brushSwatch{Brush: size, Diameter: float32(cfg.IndicatorSize), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *brushSwatch) CreateRenderer() fyne.WidgetRenderer {
	dot := canvas.NewCircle(color.Black)
	dot.Resize(fyne.NewSize(s.Diameter, s.Diameter))
	holder := container.New(layout.NewGridWrapLayout(fyne.NewSize(s.Diameter, s.Diameter)), dot)
	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = color.White
	frame.StrokeWidth = 2
	frame.SetMinSize(fyne.NewSize(40, 40))
	return widget.NewSimpleRenderer(container.NewStack(frame, container.NewCenter(holder)))
}

func (s *brushSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Brush)
	}
}

// Toolbar is the strip above the board: layers, brush sizes, colours,
// history buttons and clear.
type Toolbar struct {
	board  *BoardWidget
	layers *fyne.Container
	status *widget.Label
	hex    *widget.Entry
}

// NewToolbar builds the toolbar for board.
func NewToolbar(board *BoardWidget) *Toolbar {
	t := &Toolbar{
		board:  board,
		layers: container.NewHBox(),
		status: widget.NewLabel(""),
		hex:    widget.NewEntry(),
	}
	t.hex.SetPlaceHolder("#RRGGBB")
	t.hex.OnSubmitted = t.submitHex
	t.rebuildLayers()
	t.updateStatus()
	return t
}

// SetStatus shows text in the status label.
func (t *Toolbar) SetStatus(text string) {
	t.status.SetText(text)
}

func (t *Toolbar) updateStatus() {
	b := t.board.Board()
	size, _ := b.Brush()
	t.SetStatus(fmt.Sprintf("layer %s · %s · %s", b.ActiveLayer().Label(), size, b.Color()))
}

func (t *Toolbar) rebuildLayers() {
	b := t.board.Board()
	active := b.ActiveLayer()
	objects := make([]fyne.CanvasObject, 0, len(b.Layers())+1)
	for _, l := range b.Layers() {
		position := l.Position
		btn := widget.NewButton(l.Label(), func() { t.switchLayer(position) })
		if l.ID == active.ID {
			btn.Importance = widget.HighImportance
		}
		objects = append(objects, btn)
	}
	objects = append(objects, widget.NewButtonWithIcon("", theme.ContentAddIcon(), t.addLayer))
	t.layers.Objects = objects
	t.layers.Refresh()
}

func (t *Toolbar) switchLayer(position int) {
	if err := t.board.Board().SwitchLayer(position); err != nil {
		log.Printf("[UI] %v", err)
		t.SetStatus(err.Error())
		return
	}
	t.rebuildLayers()
	t.updateStatus()
}

func (t *Toolbar) addLayer() {
	t.board.Board().AddLayer()
	t.rebuildLayers()
}

func (t *Toolbar) selectBrush(size state.BrushSize) {
	if err := t.board.Board().SelectBrush(size); err != nil {
		t.SetStatus(err.Error())
		return
	}
	t.updateStatus()
}

func (t *Toolbar) selectColor(c state.Color) {
	t.board.Board().SelectColor(c)
	t.updateStatus()
}

func (t *Toolbar) submitHex(text string) {
	c, err := state.ParseColor(text)
	if err != nil {
		t.SetStatus(err.Error())
		return
	}
	t.selectColor(c)
}

func (t *Toolbar) clear() {
	t.board.Board().Clear()
	t.board.Redraw()
}

// Object assembles the toolbar's widgets.
func (t *Toolbar) Object() fyne.CanvasObject {
	b := t.board.Board()
	history := widget.NewToolbar(
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() { b.Dispatch(state.ActionUndo) }),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() { b.Dispatch(state.ActionRedo) }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), t.clear),
	)

	brushes := container.NewHBox()
	for _, size := range state.BrushOrder {
		brushes.Add(newBrushSwatch(size, t.selectBrush))
	}

	colors := container.NewHBox()
	for _, c := range state.PaletteColors() {
		colors.Add(newColorSwatch(c, t.selectColor))
	}
	hex := container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 36)), t.hex)

	return container.NewHBox(
		widget.NewLabelWithStyle(config.WindowTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		t.layers,
		widget.NewSeparator(),
		brushes,
		widget.NewSeparator(),
		colors,
		hex,
		widget.NewSeparator(),
		history,
		t.status,
	)
}

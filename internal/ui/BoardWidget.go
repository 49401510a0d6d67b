package ui

import (
	"image"
	"image/color"

	"HPaint/internal/paint"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the composited layers and turns mouse input into
// pointer events for the board.
type BoardWidget struct {
	widget.BaseWidget
	board  *paint.Board
	raster *canvas.Raster
	size   fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget wraps board. width and height are the surface size in
// device independent pixels.
func NewBoardWidget(board *paint.Board, width, height int) *BoardWidget {
	w := &BoardWidget{
		board: board,
		size:  fyne.NewSize(float32(width), float32(height)),
	}
	w.raster = canvas.NewRaster(func(int, int) image.Image {
		return w.board.Composite()
	})
	w.raster.ScaleMode = canvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

func (w *BoardWidget) Board() *paint.Board { return w.board }

// Redraw repaints the raster if the board changed since the last call.
func (w *BoardWidget) Redraw() {
	if _, ok := w.board.TakeDamage(); ok {
		w.raster.Refresh()
	}
}

func (w *BoardWidget) syncOrigin() {
	app := fyne.CurrentApp()
	if app == nil || app.Driver() == nil {
		return
	}
	pos := app.Driver().AbsolutePositionForObject(w)
	w.board.SetOrigin(float64(pos.X), float64(pos.Y))
}

func (w *BoardWidget) move(abs fyne.Position) {
	w.board.PointerMove(float64(abs.X), float64(abs.Y))
	w.Redraw()
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	// The press position is tracked first so the gesture starts under the cursor.
	w.move(e.AbsolutePosition)
	w.board.PointerDown()
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.board.PointerUp()
	}
}

func (w *BoardWidget) MouseMoved(e *desktop.MouseEvent) { w.move(e.AbsolutePosition) }
func (w *BoardWidget) Dragged(e *fyne.DragEvent)        { w.move(e.AbsolutePosition) }
func (w *BoardWidget) DragEnd()                         { w.board.PointerUp() }
func (w *BoardWidget) MouseIn(*desktop.MouseEvent)      {}
func (w *BoardWidget) MouseOut()                        {}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	return &boardWidgetRenderer{
		board:      w,
		background: canvas.NewRectangle(color.White),
	}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.raster}
}

// Layout also refreshes the board origin: it is the only point where the
// widget's screen position can change.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.raster.Resize(r.board.size)
	r.board.syncOrigin()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size { return r.board.size }
func (r *boardWidgetRenderer) Refresh()           { r.board.raster.Refresh() }
func (r *boardWidgetRenderer) Destroy()           {}

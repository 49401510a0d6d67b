// Package paint tracks pointer gestures and renders them as strokes onto
// the active layer.
package paint

import (
	"image"
	"log"
	"sync"

	"HPaint/internal/state"
	"HPaint/internal/surface"
)

// Board owns all paint state: the layer stack, the brush and colour, and
// the points of the gesture in progress. Every change goes through one of
// its methods.
type Board struct {
	layers *surface.Stack

	originX, originY float64
	hasOrigin        bool

	previous state.Point
	current  state.Point
	tracked  bool
	drawing  bool

	brush     state.BrushConfig
	brushSize state.BrushSize
	color     state.Color

	grid          *state.Grid
	gridHighlight string

	damage state.Damage
	mu     sync.Mutex

	// OnAction receives undo and redo intents. No history is kept, so
	// nothing acts on them by default.
	OnAction func(state.Action)
}

// Option customises a Board.
type Option func(*Board)

// WithGrid turns on the cell-based variant: each tracked pointer move also
// colours the grid cell under the pointer.
func WithGrid(g *state.Grid, highlight string) Option {
	return func(b *Board) {
		b.grid = g
		b.gridHighlight = highlight
	}
}

// WithBrush sets the initial brush preset.
func WithBrush(size state.BrushSize) Option {
	return func(b *Board) {
		if cfg, err := state.Brush(size); err == nil {
			b.brush, b.brushSize = cfg, size
		}
	}
}

// WithColor sets the initial stroke colour.
func WithColor(c state.Color) Option {
	return func(b *Board) { b.color = c }
}

// NewBoard returns a board drawing on layers with a small black brush.
func NewBoard(layers *surface.Stack, opts ...Option) *Board {
	small, _ := state.Brush(state.BrushSmall)
	b := &Board{
		layers:    layers,
		brush:     small,
		brushSize: state.BrushSmall,
		color:     state.Black,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetOrigin records the screen position of the surface's top-left corner.
// Pointer positions are translated by it.
func (b *Board) SetOrigin(left, top float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.originX, b.originY = left, top
	b.hasOrigin = true
}

func (b *Board) PointerDown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drawing = true
}

func (b *Board) PointerUp() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drawing = false
}

// PointerMove tracks the pointer at client position (x, y) and, while a
// gesture is in progress, renders a segment from the previously tracked
// point. Points are tracked even when not drawing so a gesture starts from
// where the pointer actually is. It reports whether a segment was drawn.
func (b *Board) PointerMove(x, y float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.hasOrigin {
		return false
	}
	established := b.tracked
	b.previous = b.current
	b.current = state.Point{X: x - b.originX, Y: y - b.originY}
	b.tracked = true

	if b.grid != nil {
		b.grid.Highlight(b.current, b.gridHighlight)
	}
	if !b.drawing || !established {
		return false
	}
	return b.drawSegment(b.previous, b.current)
}

func (b *Board) drawSegment(from, to state.Point) bool {
	_, c := b.layers.Active()
	if c == nil {
		return false
	}
	c.SetStrokeColor(b.color.NRGBA())
	c.SetLineWidth(b.brush.LineWidth)
	c.MoveTo(from.X, from.Y)
	c.LineTo(to.X, to.Y)
	if err := c.Stroke(); err != nil {
		log.Printf("[PAINT] Stroke failed: %v", err)
		return false
	}
	b.damage.Add(state.SegmentRegion(from, to, b.brush.LineWidth/2))
	return true
}

// Drawing reports whether a gesture is in progress.
func (b *Board) Drawing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drawing
}

// Points returns the last two tracked points, oldest first.
func (b *Board) Points() (previous, current state.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.previous, b.current
}

// Clear wipes the whole active surface.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, c := b.layers.Active()
	if c == nil {
		return
	}
	c.ClearRect(0, 0, c.Width(), c.Height())
	b.damage.Add(state.Region{Width: float64(c.Width()), Height: float64(c.Height())})
	log.Printf("[PAINT] Cleared layer %s", l.Label())
}

// SelectBrush switches to one of the brush presets. Strokes already drawn
// keep their width.
func (b *Board) SelectBrush(size state.BrushSize) error {
	cfg, err := state.Brush(size)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.brush, b.brushSize = cfg, size
	return nil
}

func (b *Board) Brush() (state.BrushSize, state.BrushConfig) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.brushSize, b.brush
}

// SelectColor sets the colour of subsequent strokes.
func (b *Board) SelectColor(c state.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.color = c
}

func (b *Board) Color() state.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.color
}

// AddLayer stacks a new empty layer on top. The active layer is unchanged.
func (b *Board) AddLayer() state.Layer {
	return b.layers.Add()
}

// SwitchLayer routes subsequent strokes to the layer at position.
func (b *Board) SwitchLayer(position int) error {
	if err := b.layers.Select(position); err != nil {
		return err
	}
	log.Printf("[PAINT] Switched to layer %d", position+1)
	return nil
}

func (b *Board) ActiveLayer() state.Layer {
	l, _ := b.layers.Active()
	return l
}

func (b *Board) Layers() []state.Layer {
	return b.layers.Layers()
}

// Composite renders all layers back to front.
func (b *Board) Composite() *image.RGBA {
	return b.layers.Composite()
}

// Grid returns the cell grid, or nil when the grid variant is off.
func (b *Board) Grid() *state.Grid {
	return b.grid
}

// TakeDamage returns the area changed since the last call.
func (b *Board) TakeDamage() (state.Region, bool) {
	return b.damage.Take()
}

// HandleKey maps a key chord to an editing intent and reports whether the
// platform's default handling of the chord should be suppressed.
func (b *Board) HandleKey(c state.Chord) (state.Action, bool) {
	action := state.HotkeyFor(c)
	if action == state.ActionNone {
		return action, false
	}
	b.Dispatch(action)
	return action, true
}

// Dispatch hands an undo or redo intent to OnAction.
func (b *Board) Dispatch(action state.Action) {
	if action == state.ActionNone {
		return
	}
	log.Printf("[KEYS] %s requested", action)
	if b.OnAction != nil {
		b.OnAction(action)
	}
}

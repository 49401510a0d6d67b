// Package surfacetest provides a Canvas that records drawing calls instead
// of rasterising them.
package surfacetest

import (
	"image/color"
	"sync"

	"HPaint/internal/state"
	"HPaint/internal/surface"
)

// Segment is one stroked line as the recorder saw it.
type Segment struct {
	From, To state.Point
	Color    color.Color
	Width    float64
}

// Recorder is a surface.Canvas that remembers every stroked segment.
type Recorder struct {
	W, H     int
	Segments []Segment
	Clears   int

	color color.Color
	width float64
	path  []state.Point
}

var _ surface.Canvas = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{W: width, H: height, color: color.Black, width: 1}
}

func (r *Recorder) SetStrokeColor(c color.Color) { r.color = c }
func (r *Recorder) SetLineWidth(w float64)       { r.width = w }
func (r *Recorder) Width() int                   { return r.W }
func (r *Recorder) Height() int                  { return r.H }

func (r *Recorder) MoveTo(x, y float64) {
	r.path = []state.Point{{X: x, Y: y}}
}

func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, state.Point{X: x, Y: y})
}

func (r *Recorder) Stroke() error {
	for i := 1; i < len(r.path); i++ {
		r.Segments = append(r.Segments, Segment{
			From: r.path[i-1], To: r.path[i], Color: r.color, Width: r.width,
		})
	}
	r.path = nil
	return nil
}

// ClearRect drops every recorded segment when the whole canvas is cleared.
func (r *Recorder) ClearRect(x, y, w, h int) {
	r.Clears++
	if x <= 0 && y <= 0 && x+w >= r.W && y+h >= r.H {
		r.Segments = nil
	}
}

// Factory creates recorders and keeps them in creation order.
type Factory struct {
	mu        sync.Mutex
	Recorders []*Recorder
}

func (f *Factory) New(width, height int) surface.Canvas {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := NewRecorder(width, height)
	f.Recorders = append(f.Recorders, r)
	return r
}

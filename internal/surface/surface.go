// Package surface holds the raster drawing surfaces strokes are rendered
// onto and the stack that orders them into layers.
package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Canvas is the set of drawing primitives the stroke renderer relies on.
type Canvas interface {
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke() error
	ClearRect(x, y, w, h int)
	Width() int
	Height() int
}

// Imager is implemented by canvases that can be read back.
type Imager interface {
	Image() image.Image
}

// Surface is a Canvas backed by a gg drawing context.
type Surface struct {
	ctx *gg.Context
}

var (
	_ Canvas = (*Surface)(nil)
	_ Imager = (*Surface)(nil)
)

// NewSurface returns a transparent width×height surface set up with a
// black 4px round-capped pen.
func NewSurface(width, height int) *Surface {
	ctx := gg.NewContext(width, height)
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	ctx.SetColor(color.Black)
	ctx.SetLineWidth(4)
	return &Surface{ctx: ctx}
}

func (s *Surface) SetStrokeColor(c color.Color) { s.ctx.SetColor(c) }
func (s *Surface) SetLineWidth(w float64)       { s.ctx.SetLineWidth(w) }
func (s *Surface) MoveTo(x, y float64)          { s.ctx.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)          { s.ctx.LineTo(x, y) }
func (s *Surface) Stroke() error                { return s.ctx.Stroke() }
func (s *Surface) Width() int                   { return s.ctx.Width() }
func (s *Surface) Height() int                  { return s.ctx.Height() }

// ClearRect makes the given rectangle transparent. The rectangle is
// clipped to the surface.
func (s *Surface) ClearRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, s.Width(), s.Height()))
	if r.Empty() {
		return
	}
	if r.Dx() == s.Width() && r.Dy() == s.Height() {
		s.ctx.Clear()
		return
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			s.ctx.SetPixel(px, py, gg.Transparent)
		}
	}
}

// Image returns a copy of the current raster.
func (s *Surface) Image() image.Image {
	return s.ctx.Image()
}

// At reports the colour of a single pixel.
func (s *Surface) At(x, y int) color.Color {
	return s.ctx.Image().At(x, y)
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.ctx.Close()
}

package state

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Point is a location in surface-local coordinates.
type Point struct{ X, Y float64 }

// Color is the active stroke colour. Channels are 0-255, alpha is 0-1.
type Color struct {
	R, G, B uint8
	A       float64
}

var Black = Color{A: 1}

// NRGBA converts the colour for use with image/color consumers.
func (c Color) NRGBA() color.NRGBA {
	a := math.Round(clamp01(c.A) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}

// String formats the colour the way a CSS stroke style is written.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, c.A)
}

// FromColor converts any image/color value, un-premultiplying it.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: float64(n.A) / 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type BrushSize string

const (
	BrushSmall  BrushSize = "sm"
	BrushMedium BrushSize = "md"
	BrushLarge  BrushSize = "lg"
)

// BrushConfig is one of the fixed brush presets. IndicatorSize is the
// diameter in pixels of the toolbar circle that represents it.
type BrushConfig struct {
	LineWidth     float64
	IndicatorSize int
}

var ErrUnknownBrush = errors.New("unknown brush size")

// BrushOrder lists the presets smallest first, the order the toolbar shows them.
var BrushOrder = []BrushSize{BrushSmall, BrushMedium, BrushLarge}

var brushSizes = map[BrushSize]BrushConfig{
	BrushSmall:  {LineWidth: 4, IndicatorSize: 8},
	BrushMedium: {LineWidth: 8, IndicatorSize: 16},
	BrushLarge:  {LineWidth: 16, IndicatorSize: 32},
}

// Brush returns the preset for size.
func Brush(size BrushSize) (BrushConfig, error) {
	cfg, ok := brushSizes[size]
	if !ok {
		return BrushConfig{}, fmt.Errorf("%w: %q", ErrUnknownBrush, string(size))
	}
	return cfg, nil
}

// Layer identifies one stacked drawing surface. Surfaces are painted in
// ascending Position.
type Layer struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// Label is what the layer menu shows for the layer.
func (l Layer) Label() string {
	return fmt.Sprintf("%d", l.Position+1)
}

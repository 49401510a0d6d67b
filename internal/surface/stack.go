package surface

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sort"
	"sync"

	"HPaint/internal/state"

	xdraw "golang.org/x/image/draw"
)

var ErrUnknownLayer = errors.New("unknown layer")

// Factory creates the canvas backing a new layer.
type Factory func(width, height int) Canvas

// DefaultFactory backs layers with gg surfaces.
func DefaultFactory(width, height int) Canvas {
	return NewSurface(width, height)
}

type layer struct {
	state.Layer
	canvas Canvas
}

// Stack is an ordered set of equally sized layers plus the index of the
// one strokes currently go to.
type Stack struct {
	width   int
	height  int
	factory Factory
	layers  []*layer
	active  int
	mu      sync.RWMutex
}

// NewStack returns a stack holding a single empty layer at position 0.
// A nil factory means DefaultFactory.
func NewStack(width, height int, factory Factory) *Stack {
	if factory == nil {
		factory = DefaultFactory
	}
	s := &Stack{width: width, height: height, factory: factory}
	s.Add()
	return s
}

func (s *Stack) Width() int  { return s.width }
func (s *Stack) Height() int { return s.height }

// Add puts a new empty layer on top and returns its record. The active
// layer does not change.
func (s *Stack) Add() state.Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := &layer{
		Layer:  state.NewLayer(len(s.layers)),
		canvas: s.factory(s.width, s.height),
	}
	s.layers = append(s.layers, l)
	log.Printf("[LAYERS] Added layer %s at position %d", l.ID, l.Position)
	return l.Layer
}

// Select makes the layer at position the active one.
func (s *Stack) Select(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.layers {
		if l.Position == position {
			s.active = i
			return nil
		}
	}
	return fmt.Errorf("%w: position %d", ErrUnknownLayer, position)
}

// Active returns the layer strokes go to and its canvas. The canvas is nil
// when the stack is empty or the layer has no backing canvas.
func (s *Stack) Active() (state.Layer, Canvas) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active < 0 || s.active >= len(s.layers) {
		return state.Layer{}, nil
	}
	l := s.layers[s.active]
	return l.Layer, l.canvas
}

// Layers lists the layer records in position order.
func (s *Stack) Layers() []state.Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]state.Layer, 0, len(s.layers))
	for _, l := range s.sorted() {
		out = append(out, l.Layer)
	}
	return out
}

// Canvas returns the canvas of the layer at position.
func (s *Stack) Canvas(position int) (Canvas, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.layers {
		if l.Position == position {
			return l.canvas, l.canvas != nil
		}
	}
	return nil, false
}

// Composite paints every readable layer back to front onto a new
// transparent image the size of the stack.
func (s *Stack) Composite() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.sorted() {
		src, ok := l.canvas.(Imager)
		if !ok {
			continue
		}
		img := src.Image()
		xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Over)
	}
	return dst
}

func (s *Stack) sorted() []*layer {
	out := make([]*layer, len(s.layers))
	copy(out, s.layers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

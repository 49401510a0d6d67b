package surface_test

import (
	"image/color"
	"testing"

	"HPaint/internal/surface"
	"HPaint/internal/surface/surfacetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_StartsWithOneLayer(t *testing.T) {
	s := surface.NewStack(10, 10, nil)

	layers := s.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, 0, layers[0].Position)

	active, c := s.Active()
	assert.Equal(t, layers[0], active)
	assert.NotNil(t, c)
}

func TestStack_AddKeepsActive(t *testing.T) {
	f := &surfacetest.Factory{}
	s := surface.NewStack(10, 10, f.New)

	added := s.Add()
	assert.Equal(t, 1, added.Position)
	assert.Len(t, f.Recorders, 2)

	active, c := s.Active()
	assert.Equal(t, 0, active.Position)
	assert.Same(t, f.Recorders[0], c)
	assert.NotEqual(t, s.Layers()[0].ID, s.Layers()[1].ID)
}

func TestStack_Select(t *testing.T) {
	f := &surfacetest.Factory{}
	s := surface.NewStack(10, 10, f.New)
	s.Add()

	require.NoError(t, s.Select(1))
	active, c := s.Active()
	assert.Equal(t, 1, active.Position)
	assert.Same(t, f.Recorders[1], c)

	err := s.Select(7)
	assert.ErrorIs(t, err, surface.ErrUnknownLayer)
	active, _ = s.Active()
	assert.Equal(t, 1, active.Position)
}

func TestStack_Canvas(t *testing.T) {
	f := &surfacetest.Factory{}
	s := surface.NewStack(10, 10, f.New)

	c, ok := s.Canvas(0)
	assert.True(t, ok)
	assert.Same(t, f.Recorders[0], c)
	_, ok = s.Canvas(3)
	assert.False(t, ok)
}

func paint(t *testing.T, c surface.Canvas, col color.Color, y float64) {
	t.Helper()
	c.SetStrokeColor(col)
	c.SetLineWidth(10)
	c.MoveTo(5, y)
	c.LineTo(35, y)
	require.NoError(t, c.Stroke())
}

func TestStack_CompositeBackToFront(t *testing.T) {
	s := surface.NewStack(40, 40, nil)
	s.Add()

	bottom, _ := s.Canvas(0)
	top, _ := s.Canvas(1)
	paint(t, bottom, color.NRGBA{R: 255, A: 255}, 10)
	paint(t, bottom, color.NRGBA{R: 255, A: 255}, 30)
	paint(t, top, color.NRGBA{B: 255, A: 255}, 10)

	img := s.Composite()
	assert.Equal(t, 40, img.Bounds().Dx())

	r, _, b, a := img.At(20, 10).RGBA()
	assert.Greater(t, a>>8, uint32(200))
	assert.Greater(t, b, r, "top layer wins where both painted")

	r, _, b, _ = img.At(20, 30).RGBA()
	assert.Greater(t, r, b, "bottom layer shows through transparent top")

	_, _, _, a = img.At(20, 20).RGBA()
	assert.Zero(t, a)
}

func TestStack_CompositeSkipsUnreadableCanvases(t *testing.T) {
	f := &surfacetest.Factory{}
	s := surface.NewStack(8, 8, f.New)
	img := s.Composite()
	_, _, _, a := img.At(4, 4).RGBA()
	assert.Zero(t, a)
}

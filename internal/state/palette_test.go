package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in   string
		want Color
	}{
		{"#FF6900", Color{R: 255, G: 105, A: 1}},
		{"ff6900", Color{R: 255, G: 105, A: 1}},
		{"#000", Color{A: 1}},
		{"#fff", Color{R: 255, G: 255, B: 255, A: 1}},
		{"black", Color{A: 1}},
		{"Red", Color{R: 255, A: 1}},
		{"#0000ff00", Color{B: 255}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "notacolor", "#1234567"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidColor, in)
	}
}

func TestPaletteColors(t *testing.T) {
	colors := PaletteColors()
	require.Len(t, colors, len(Palette))
	assert.Equal(t, Black, colors[0])
}

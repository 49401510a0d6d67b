package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// Palette is the swatch row offered by the colour picker.
var Palette = []string{
	"#000000",
	"#FF6900", "#FCB900", "#7BDCB5", "#00D084", "#8ED1FC",
	"#0693E3", "#ABB8C3", "#EB144C", "#F78DA7", "#9900EF",
}

// PaletteColors returns Palette parsed into colours.
func PaletteColors() []Color {
	out := make([]Color, 0, len(Palette))
	for _, s := range Palette {
		c, err := ParseColor(s)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParseColor accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA hex strings (the
// leading '#' is optional) and SVG colour names such as "black".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty", ErrInvalidColor)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return FromColor(gg.Hex(hex).Color()), nil
}

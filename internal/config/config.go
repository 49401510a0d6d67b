// Package config holds the paint tool's tunables and loads overrides from
// a TOML file.
package config

import (
	"errors"
	"fmt"
	"log"

	"HPaint/internal/state"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 704
	MaxDimension  = 8192
	WindowTitle   = "h.paint"
)

var ErrInvalid = errors.New("invalid config")

type Grid struct {
	Enabled   bool   `toml:"enabled"`
	Fill      string `toml:"fill"`
	Highlight string `toml:"highlight"`
}

// Config is the startup configuration. Zero fields in a loaded file keep
// their defaults.
type Config struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Color   string `toml:"color"`
	Brush   string `toml:"brush"`
	Verbose bool   `toml:"verbose"`
	Grid    Grid   `toml:"grid"`
}

func Default() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Color:  "black",
		Brush:  string(state.BrushSmall),
		Grid: Grid{
			Fill:      state.DefaultGridFill,
			Highlight: state.DefaultGridHighlight,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[CONFIG] Ignoring unknown key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if _, err := state.ParseColor(c.Color); err != nil {
		return fmt.Errorf("%w: color: %w", ErrInvalid, err)
	}
	if _, err := state.Brush(state.BrushSize(c.Brush)); err != nil {
		return fmt.Errorf("%w: brush: %w", ErrInvalid, err)
	}
	return nil
}

// StrokeColor returns the configured colour, falling back to black.
func (c Config) StrokeColor() state.Color {
	col, err := state.ParseColor(c.Color)
	if err != nil {
		return state.Black
	}
	return col
}

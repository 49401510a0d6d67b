package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"HPaint/internal/config"
	"HPaint/internal/paint"
	"HPaint/internal/state"
	"HPaint/internal/surface"
	"HPaint/internal/ui"

	"github.com/gogpu/gg"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file")
	width      = flag.Int("width", 0, "Canvas width (overrides config)")
	height     = flag.Int("height", 0, "Canvas height (overrides config)")
	gridMode   = flag.Bool("grid", false, "Also track the pointer on the experimental cell grid")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Verbose {
		gg.SetLogger(slog.Default())
	}

	board := newBoard(cfg)
	log.Printf("Starting %s on a %dx%d canvas", config.WindowTitle, cfg.Width, cfg.Height)
	ui.RunApp(cfg, board)
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *gridMode {
		cfg.Grid.Enabled = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

func newBoard(cfg config.Config) *paint.Board {
	opts := []paint.Option{
		paint.WithBrush(state.BrushSize(cfg.Brush)),
		paint.WithColor(cfg.StrokeColor()),
	}
	if cfg.Grid.Enabled {
		grid := state.NewGrid(cfg.Width, cfg.Height, cfg.Grid.Fill)
		opts = append(opts, paint.WithGrid(grid, cfg.Grid.Highlight))
	}
	return paint.NewBoard(surface.NewStack(cfg.Width, cfg.Height, nil), opts...)
}

package pong

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the fixed tick rate. Zero means TicksPerSecond.
	TPS int
}

// DefaultRunConfig returns the standard 500x500 "Pong" window at 60 TPS.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "Pong",
		Width:  WindowWidth,
		Height: WindowHeight,
		TPS:    TicksPerSecond,
	}
}

// Run opens a window and drives g until the window is closed or Escape is
// pressed. Both end the loop without error.
func Run(g *Game, cfg RunConfig) error {
	def := DefaultRunConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.TPS <= 0 {
		cfg.TPS = def.TPS
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	g.debugf("run %dx%d at %d TPS", cfg.Width, cfg.Height, cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("pong: run: %w", err)
	}
	return nil
}

package pong

import (
	"fmt"
	"os"
)

// debugf prints a diagnostic line to stderr when debug mode is on.
func (g *Game) debugf(format string, args ...any) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[pong] tick %d: %s\n", g.tick, fmt.Sprintf(format, args...))
}

// warnf reports a recoverable failure to stderr regardless of debug mode.
func (g *Game) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[pong] %s\n", fmt.Sprintf(format, args...))
}

// debugCheckSliders panics with a descriptive message when a paddle has left
// its allowed range. Only runs in debug mode.
func (g *Game) debugCheckSliders() {
	if !g.debug {
		return
	}
	for i, s := range g.sliders {
		if s.Pos.Y < SliderMinY || s.Pos.Y > SliderMaxY {
			panic(fmt.Sprintf("pong debug: %s paddle at y=%v outside [%d, %d]",
				Side(i), s.Pos.Y, SliderMinY, SliderMaxY))
		}
	}
}

package pong

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Screen-flow keys.
var (
	confirmKeys   = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
	quitRallyKey  = ebiten.KeyQ
	terminateKey  = ebiten.KeyEscape
	screenshotKey = ebiten.KeyF12
)

// KeySet is a snapshot of the keys held during one tick.
type KeySet map[ebiten.Key]bool

// IsKeyPressed reports whether key is held in the snapshot.
func (s KeySet) IsKeyPressed(key ebiten.Key) bool {
	return s[key]
}

// NewKeySet builds a snapshot holding keys.
func NewKeySet(keys ...ebiten.Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Input is everything the game reads in one tick: the held-key snapshot and
// the discrete key-down events in the order they arrived.
type Input struct {
	Held    KeySet
	Pressed []ebiten.Key
}

// pollInput returns the next injected tick if any is queued, otherwise the
// live keyboard state. Injected ticks fully replace real input for that tick.
func (g *Game) pollInput() Input {
	if in, ok := g.popInjected(); ok {
		return in
	}

	g.keyBuf = inpututil.AppendPressedKeys(g.keyBuf[:0])
	held := make(KeySet, len(g.keyBuf))
	for _, k := range g.keyBuf {
		held[k] = true
	}
	g.pressedBuf = inpututil.AppendJustPressedKeys(g.pressedBuf[:0])
	return Input{Held: held, Pressed: g.pressedBuf}
}

func isConfirmKey(k ebiten.Key) bool {
	for _, c := range confirmKeys {
		if k == c {
			return true
		}
	}
	return false
}

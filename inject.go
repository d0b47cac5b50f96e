package pong

import "github.com/hajimehoshi/ebiten/v2"

// InjectKeyPress queues one tick in which key goes down and is held. The tick
// is consumed by the next Update in place of the live keyboard.
func (g *Game) InjectKeyPress(key ebiten.Key) {
	g.injectQueue = append(g.injectQueue, Input{
		Held:    NewKeySet(key),
		Pressed: []ebiten.Key{key},
	})
}

// InjectKeyHold queues frames ticks with key held. Only the first tick
// reports the key-down event. Minimum frames is 1.
func (g *Game) InjectKeyHold(key ebiten.Key, frames int) {
	if frames < 1 {
		frames = 1
	}
	g.InjectKeyPress(key)
	for i := 1; i < frames; i++ {
		g.injectQueue = append(g.injectQueue, Input{Held: NewKeySet(key)})
	}
}

// InjectIdle queues frames ticks with no keys held.
func (g *Game) InjectIdle(frames int) {
	for i := 0; i < frames; i++ {
		g.injectQueue = append(g.injectQueue, Input{Held: KeySet{}})
	}
}

// popInjected removes and returns the oldest injected tick.
func (g *Game) popInjected() (Input, bool) {
	if len(g.injectQueue) == 0 {
		return Input{}, false
	}
	in := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return in, true
}

package pong

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeySet(t *testing.T) {
	s := NewKeySet(ebiten.KeyW, ebiten.KeyEnter)
	if !s.IsKeyPressed(ebiten.KeyW) || !s.IsKeyPressed(ebiten.KeyEnter) {
		t.Error("expected W and Enter held")
	}
	if s.IsKeyPressed(ebiten.KeyS) {
		t.Error("S should not be held")
	}

	var empty KeySet
	if empty.IsKeyPressed(ebiten.KeyW) {
		t.Error("nil KeySet should report nothing held")
	}
}

func TestIsConfirmKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want bool
	}{
		{ebiten.KeyEnter, true},
		{ebiten.KeySpace, true},
		{ebiten.KeyQ, false},
		{ebiten.KeyEscape, false},
		{ebiten.KeyNumpadEnter, false},
	}
	for _, tt := range tests {
		if got := isConfirmKey(tt.key); got != tt.want {
			t.Errorf("isConfirmKey(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestPollInputPrefersInjected(t *testing.T) {
	g := newTestGame()
	g.InjectKeyPress(ebiten.KeyQ)

	in := g.pollInput()
	if len(in.Pressed) != 1 || in.Pressed[0] != ebiten.KeyQ {
		t.Errorf("Pressed = %v, want [Q]", in.Pressed)
	}
	if len(g.injectQueue) != 0 {
		t.Errorf("queue length = %d, want 0", len(g.injectQueue))
	}
}

func TestStepNilHeldSnapshot(t *testing.T) {
	g := newTestGame()
	g.state = StateRunning
	if err := g.Step(Input{}); err != nil {
		t.Fatal(err)
	}
	for i, s := range g.Sliders() {
		if s.Pos.Y != 250 {
			t.Errorf("slider %d moved with no keys held", i)
		}
	}
}

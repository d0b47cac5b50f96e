package pong

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestSliderUpdate(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		keys  KeySet
		want  float64
	}{
		{"idle", 250, NewKeySet(), 250},
		{"up", 250, NewKeySet(ebiten.KeyW), 240},
		{"down", 250, NewKeySet(ebiten.KeyS), 260},
		{"up wins over down", 250, NewKeySet(ebiten.KeyW, ebiten.KeyS), 240},
		{"other keys ignored", 250, NewKeySet(ebiten.KeyUp, ebiten.KeyDown), 250},
		{"clamp top", 45, NewKeySet(ebiten.KeyW), SliderMinY},
		{"clamp bottom", 455, NewKeySet(ebiten.KeyS), SliderMaxY},
		{"exact top", 50, NewKeySet(ebiten.KeyW), SliderMinY},
		{"exact bottom", 450, NewKeySet(ebiten.KeyS), SliderMaxY},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(Vec2{20, tt.start}, Vec2{10, 70}, DefaultControls)
			s.Update(tt.keys)
			if s.Pos.Y != tt.want {
				t.Errorf("Y = %v, want %v", s.Pos.Y, tt.want)
			}
			if s.Pos.X != 20 {
				t.Errorf("X moved to %v", s.Pos.X)
			}
		})
	}
}

func TestSliderClampUnderSustainedHold(t *testing.T) {
	for _, key := range []ebiten.Key{ebiten.KeyW, ebiten.KeyS} {
		s := NewSlider(Vec2{480, 250}, Vec2{10, 70}, DefaultControls)
		keys := NewKeySet(key)
		for tick := 0; tick < 600; tick++ {
			s.Update(keys)
			if s.Pos.Y < SliderMinY || s.Pos.Y > SliderMaxY {
				t.Fatalf("key %v tick %d: Y = %v outside [%d, %d]", key, tick, s.Pos.Y, SliderMinY, SliderMaxY)
			}
		}
		want := float64(SliderMinY)
		if key == ebiten.KeyS {
			want = SliderMaxY
		}
		if s.Pos.Y != want {
			t.Errorf("key %v: settled at %v, want %v", key, s.Pos.Y, want)
		}
	}
}

func TestSliderCustomControls(t *testing.T) {
	s := NewSlider(Vec2{480, 250}, Vec2{10, 70}, Controls{Up: ebiten.KeyUp, Down: ebiten.KeyDown})
	s.Update(NewKeySet(ebiten.KeyW))
	if s.Pos.Y != 250 {
		t.Errorf("W moved a paddle bound to arrows: Y = %v", s.Pos.Y)
	}
	s.Update(NewKeySet(ebiten.KeyDown))
	if s.Pos.Y != 260 {
		t.Errorf("Y = %v, want 260", s.Pos.Y)
	}
}

func TestSliderBounds(t *testing.T) {
	s := NewSlider(Vec2{20, 250}, Vec2{10, 70}, DefaultControls)
	if got := s.Bounds(); got != (Rect{15, 215, 10, 70}) {
		t.Errorf("Bounds = %v", got)
	}
}

func TestScoreboard(t *testing.T) {
	var s Scoreboard
	s.Add(SideLeft)
	s.Add(SideRight)
	s.Add(SideRight)
	if s.Get(SideLeft) != 1 || s.Get(SideRight) != 2 {
		t.Fatalf("scores = %+v", s)
	}
	if got := s.String(); got != "1 2" {
		t.Errorf("String = %q, want %q", got, "1 2")
	}
	s.Reset()
	if s != (Scoreboard{}) {
		t.Errorf("after Reset = %+v", s)
	}
	if got := s.String(); got != "0 0" {
		t.Errorf("String = %q, want %q", got, "0 0")
	}
}

package pong

import "github.com/hajimehoshi/ebiten/v2"

// Paddle movement limits. The limits apply to the paddle's vertical center.
const (
	SliderStep = 10
	SliderMinY = 40
	SliderMaxY = 460

	// sliderInset is the distance from each side edge to a paddle's center.
	sliderInset = 20
)

// Controls binds a paddle to its movement keys.
type Controls struct {
	Up, Down ebiten.Key
}

// DefaultControls are used by both paddles: a single W/S pair moves them
// together.
var DefaultControls = Controls{Up: ebiten.KeyW, Down: ebiten.KeyS}

// KeyState reports whether a key is held during the current tick.
type KeyState interface {
	IsKeyPressed(key ebiten.Key) bool
}

// Slider is a paddle. X never changes after construction.
type Slider struct {
	Pos      Vec2
	Size     Vec2
	Controls Controls
}

// NewSlider creates a paddle centered at pos.
func NewSlider(pos, size Vec2, controls Controls) *Slider {
	return &Slider{Pos: pos, Size: size, Controls: controls}
}

// Update moves the paddle one step according to the held keys. Up wins when
// both keys are held. The result is clamped to [SliderMinY, SliderMaxY].
func (s *Slider) Update(keys KeyState) {
	var dy float64
	if keys.IsKeyPressed(s.Controls.Up) {
		dy = -SliderStep
	} else if keys.IsKeyPressed(s.Controls.Down) {
		dy = SliderStep
	}

	switch y := s.Pos.Y + dy; {
	case y < SliderMinY:
		s.Pos.Y = SliderMinY
	case y > SliderMaxY:
		s.Pos.Y = SliderMaxY
	default:
		s.Pos.Y = y
	}
}

// Bounds returns the paddle's bounding box.
func (s *Slider) Bounds() Rect {
	return RectCentered(s.Pos, s.Size)
}

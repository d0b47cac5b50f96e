package pong

import "math/rand/v2"

// BallSpeed is the horizontal launch speed in pixels per tick.
const BallSpeed = 4

// Scorer receives a point when the ball leaves the court. The Game implements
// it; after Score returns the ball that reported it is no longer in play.
type Scorer interface {
	Score(side Side)
}

// Ball is the rally ball. Position is the center of its bounding box.
type Ball struct {
	Pos  Vec2
	Vel  Vec2
	Size Vec2
}

// NewBall places a ball at center moving horizontally at BallSpeed toward a
// randomly chosen side.
func NewBall(center, size Vec2, rng *rand.Rand) *Ball {
	dir := 1.0
	if rng.IntN(2) == 0 {
		dir = -1
	}
	return &Ball{
		Pos:  center,
		Vel:  Vec2{BallSpeed * dir, 0},
		Size: size,
	}
}

// Update advances the ball one tick. A ball above the top or below the bottom
// edge has its vertical velocity inverted. A ball past the left edge scores
// for the left side and a ball past the right edge scores for the right. In
// both cases the ball stops moving and the scorer is expected to replace it.
func (b *Ball) Update(s Scorer) {
	switch {
	case b.Pos.Y < 0:
		b.Vel = b.Vel.Reflect(Vec2{0, 1})
	case b.Pos.Y > WindowHeight:
		b.Vel = b.Vel.Reflect(Vec2{0, -1})
	case b.Pos.X < 0:
		s.Score(SideLeft)
		return
	case b.Pos.X > WindowWidth:
		s.Score(SideRight)
		return
	}
	b.Pos = b.Pos.Add(b.Vel)
}

// Reflect rotates the velocity by twice angle degrees. Called when the ball
// touches a paddle.
func (b *Ball) Reflect(angle float64) {
	b.Vel = b.Vel.Rotate(2 * angle)
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() Rect {
	return RectCentered(b.Pos, b.Size)
}

// bounced reports whether the ball is outside the vertical range and will
// reflect on its next Update.
func (b *Ball) bounced() bool {
	return b.Pos.Y < 0 || b.Pos.Y > WindowHeight
}

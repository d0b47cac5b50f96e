package pong

import (
	"image/color"
	"math"
)

// Playfield geometry. The window is a fixed square and all simulation runs in
// window coordinates with the origin at the top-left, Y increasing downward.
const (
	WindowWidth  = 500
	WindowHeight = 500

	// TicksPerSecond is the fixed simulation rate.
	TicksPerSecond = 60
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is used for the score text.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the frame clear color.
	ColorBlack = Color{0, 0, 0, 1}
)

// RGBA converts c to a color.RGBA, clamping each component to [0, 1].
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, velocities, sizes, and normals.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rotate returns v rotated by deg degrees. Positive angles rotate from +X
// toward +Y, which is clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Reflect returns v mirrored about the line whose normal is n. A zero normal
// returns v unchanged; n need not be unit length.
func (v Vec2) Reflect(n Vec2) Vec2 {
	l2 := n.Dot(n)
	if l2 == 0 {
		return v
	}
	return v.Sub(n.Scale(2 * v.Dot(n) / l2))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectCentered returns the rectangle of the given size centered on c.
func RectCentered(c, size Vec2) Rect {
	return Rect{
		X:      c.X - size.X/2,
		Y:      c.Y - size.Y/2,
		Width:  size.X,
		Height: size.Y,
	}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap with positive area.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Center returns the center point of r.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Side identifies one half of the court.
type Side uint8

const (
	SideLeft  Side = iota // player on the left edge
	SideRight             // player on the right edge
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// GameState is the active screen. Exactly one is active at a time.
type GameState uint8

const (
	StateSplash   GameState = iota // title image, waiting for confirm
	StateRunning                   // rally in progress
	StateGameOver                  // end image, waiting for confirm
)

func (s GameState) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

package pong

import "strconv"

// Scoreboard holds the points of both sides. Counts only grow until Reset.
type Scoreboard struct {
	Left, Right int
}

// Add awards one point to side.
func (s *Scoreboard) Add(side Side) {
	switch side {
	case SideLeft:
		s.Left++
	case SideRight:
		s.Right++
	}
}

// Get returns the points of side.
func (s Scoreboard) Get(side Side) int {
	if side == SideRight {
		return s.Right
	}
	return s.Left
}

// Reset zeroes both sides.
func (s *Scoreboard) Reset() {
	s.Left, s.Right = 0, 0
}

// String formats the board the way it is drawn: "{left} {right}".
func (s Scoreboard) String() string {
	return strconv.Itoa(s.Left) + " " + strconv.Itoa(s.Right)
}

package pong

// EventType identifies a kind of game event.
type EventType uint8

const (
	EventStateChange EventType = iota // active screen changed
	EventPointScored                  // a side won a point; ball and paddles were reset
	EventPaddleHit                    // the ball touched a paddle and was deflected
	EventWallBounce                   // the ball bounced off the top or bottom edge
)

func (t EventType) String() string {
	switch t {
	case EventStateChange:
		return "state-change"
	case EventPointScored:
		return "point-scored"
	case EventPaddleHit:
		return "paddle-hit"
	case EventWallBounce:
		return "wall-bounce"
	default:
		return "unknown"
	}
}

// GameEvent carries one notable occurrence from the update loop.
type GameEvent struct {
	Type EventType
	Tick uint64

	// State is the active state after the event.
	State GameState
	// Side is the scoring side for EventPointScored and the paddle's side
	// for EventPaddleHit.
	Side   Side
	Scores Scoreboard
}

// EventSink is the interface for optional event consumers such as the ECS
// bridge in the ecs package. Events are delivered synchronously from Update.
type EventSink interface {
	EmitEvent(event GameEvent)
}

func (g *Game) emit(t EventType, side Side) {
	if g.store == nil {
		return
	}
	g.store.EmitEvent(GameEvent{
		Type:   t,
		Tick:   g.tick,
		State:  g.state,
		Side:   side,
		Scores: g.scores,
	})
}

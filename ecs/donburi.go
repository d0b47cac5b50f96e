package ecs

import (
	"github.com/phanxgames/pong"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for pong game events.
var GameEventType = events.NewEventType[pong.GameEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Game events are published to GameEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) pong.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event pong.GameEvent) {
	GameEventType.Publish(s.world, event)
}

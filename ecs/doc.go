// Package ecs provides ECS adapters for pong's game event stream.
//
// The primary adapter is [NewDonburiStore], which bridges pong game events
// (state changes, points, paddle hits, wall bounces) into a [Donburi] world
// as typed events. Subscribe to [GameEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	game.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

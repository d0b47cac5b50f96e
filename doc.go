// Package pong is a two-player Pong game for [Ebitengine].
//
// A session moves through three screens: a splash image, the rally, and a
// game-over image. Return or Space starts a rally from the splash screen and
// returns to the splash screen from game over; Q ends a rally; Escape quits.
// Both paddles move with W and S.
//
// # Quick start
//
//	assets, err := pong.LoadAssets(resources.FS, pong.DefaultFontPath, pong.DefaultFontSize)
//	if err != nil {
//		log.Fatal(err)
//	}
//	game := pong.NewGame(pong.Options{Assets: assets})
//	if err := pong.Run(game, pong.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Simulation
//
// [Game.Step] advances one tick from an [Input] snapshot and has no
// rendering dependencies, so the whole rally can be driven headless.
// [Game.Update] feeds it from the keyboard, or from input queued with
// [Game.InjectKeyPress] and friends, or from a JSON [TestRunner] script.
//
// The ball moves by its velocity each tick. Crossing the top or bottom edge
// inverts its vertical velocity. The side whose edge the ball crosses is
// credited with the point: left edge for left, right edge for right. A point
// replaces the
// ball and both paddles (a soft reset) without touching the other score.
// Touching a paddle rotates the ball's velocity by twice a random angle in
// [0, 90) degrees.
//
// # Events
//
// Set an [EventSink] with [Game.SetEventSink] to observe state changes,
// points, paddle hits and wall bounces. The ecs subpackage republishes them
// into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package pong

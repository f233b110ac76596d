// Package ecs publishes tether tracker activity into a [Donburi] world.
//
// [NewDonburiCallback] returns a tether.Callback that turns every position
// update and every start/stop of a tracker into a typed Donburi event.
// Systems subscribe to [UpdateEventType] or [StateEventType] and drain the
// queue with ProcessEvents, usually once per ECS tick.
//
// Usage:
//
//	tr := tether.NewTracker()
//	tr.SetCallback(ecs.NewDonburiCallback(world, tr.ID()))
//	ecs.UpdateEventType.Subscribe(world, func(w donburi.World, e ecs.UpdateEvent) {
//		// move the entity that follows the target
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

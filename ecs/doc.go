// Package ecs provides ECS adapters for tribute's interaction event system.
//
// The primary adapter is [NewDonburiStore], which bridges page interaction
// events (pointer, click, scroll) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive them,
// or call [TrackClicks] to keep per-element click counts as components.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	page.SetEntityStore(store)
//	ecs.TrackClicks(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

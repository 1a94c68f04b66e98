// Package ecs provides ECS adapters for choreo's lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges timeline events
// (start, finish, remove) into a [Donburi] world as typed events. Subscribe
// to [TimelineEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	timeline.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

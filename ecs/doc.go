// Package ecs bridges bramble into a [Donburi] world.
//
// [NewDonburiListener] is a bramble.ChangeListener that republishes component
// attach and detach notifications as typed Donburi events, so ECS systems can
// follow the scene without holding references into it. [PublishInput] does the
// same for a step's input events.
//
// Usage:
//
//	dw := donburi.NewWorld()
//	b := bramble.NewBuilder()
//	b.Listen(ecs.NewDonburiListener(dw))
//	world := b.Build()
//
//	ecs.ChangeEventType.Subscribe(dw, onChange)
//	// each frame, after world.Step:
//	ecs.PublishInput(dw, world)
//	events.ProcessAllEvents(dw)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

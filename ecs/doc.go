// Package ecs publishes slide button outcomes into a [Donburi] world.
//
// [NewDonburiStore] is a slidebutton.EventStore that queues every
// SlideEvent on [SlideEventType]. Subscribe to it in your systems and drain
// it with ProcessEvents once per tick:
//
//	store := ecs.NewDonburiStore(world)
//	button.SetEventStore(store)
//	ecs.SlideEventType.Subscribe(world, onSlide)
//
// [TrackOutcomes] keeps a running tally on an entity for systems that poll
// instead.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

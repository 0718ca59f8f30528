package ecs

import (
	"github.com/phanxgames/slidebutton"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SlideEventType is the Donburi event type for slide button outcomes.
var SlideEventType = events.NewEventType[slidebutton.SlideEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Events are
// published to SlideEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) slidebutton.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event slidebutton.SlideEvent) {
	SlideEventType.Publish(s.world, event)
}

// Outcomes tallies the slide events a world has processed.
type Outcomes struct {
	Counts map[slidebutton.EventType]int
	Last   slidebutton.SlideEvent
}

// OutcomesComponent holds the tally created by TrackOutcomes.
var OutcomesComponent = donburi.NewComponentType[Outcomes]()

// TrackOutcomes creates an entity carrying Outcomes and keeps it updated from
// SlideEventType.
func TrackOutcomes(world donburi.World) donburi.Entity {
	entity := world.Create(OutcomesComponent)
	SlideEventType.Subscribe(world, func(w donburi.World, ev slidebutton.SlideEvent) {
		if !w.Valid(entity) {
			return
		}
		o := OutcomesComponent.Get(w.Entry(entity))
		if o.Counts == nil {
			o.Counts = make(map[slidebutton.EventType]int)
		}
		o.Counts[ev.Type]++
		o.Last = ev
	})
	return entity
}

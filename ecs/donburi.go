// Package ecs provides ECS adapters for spruce.
package ecs

import (
	"github.com/phanxgames/spruce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for spruce interaction
// events. Subscribe to this in your ECS systems to receive hover and
// activate events.
var InteractionEventType = events.NewEventType[spruce.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) spruce.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event spruce.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/interactable"
)

// InteractionEventType carries element notifications through a world's event
// queue. Systems subscribe once and drain it with ProcessEvents each frame.
var InteractionEventType = events.NewEventType[interactable.InteractionEvent]()

// worldStore queues every notification on its world.
type worldStore struct {
	world donburi.World
}

// NewDonburiStore returns an EntityStore that queues element notifications
// on world. Pass it to interactable.WithEntityStore; set the element's
// EntityID to correlate events with an entity.
func NewDonburiStore(world donburi.World) interactable.EntityStore {
	return &worldStore{world: world}
}

func (s *worldStore) EmitEvent(ev interactable.InteractionEvent) {
	InteractionEventType.Publish(s.world, ev)
}

package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/tether"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UpdateEvent is published for every successful tracker update.
type UpdateEvent struct {
	Tracker  uuid.UUID
	Position tether.Point
	Rule     tether.Rule
	Source   tether.Element
	Target   tether.Element
	Parent   tether.Element
}

// StateEvent is published when a tracker starts or stops tracking.
type StateEvent struct {
	Tracker uuid.UUID
	Running bool
}

// UpdateEventType is the Donburi event type for tracker position updates.
var UpdateEventType = events.NewEventType[UpdateEvent]()

// StateEventType is the Donburi event type for tracker state changes.
var StateEventType = events.NewEventType[StateEvent]()

type donburiCallback struct {
	world donburi.World
	id    uuid.UUID
}

// NewDonburiCallback creates a tracker callback that publishes into world.
// id tags every event, normally the owning tracker's ID.
func NewDonburiCallback(world donburi.World, id uuid.UUID) tether.Callback {
	return &donburiCallback{world: world, id: id}
}

func (c *donburiCallback) OnUpdate(u tether.Update) {
	UpdateEventType.Publish(c.world, UpdateEvent{
		Tracker:  c.id,
		Position: u.Position(),
		Rule:     u.Rule,
		Source:   u.Source,
		Target:   u.Target,
		Parent:   u.Parent,
	})
}

func (c *donburiCallback) OnStateChanged(running bool) {
	StateEventType.Publish(c.world, StateEvent{Tracker: c.id, Running: running})
}

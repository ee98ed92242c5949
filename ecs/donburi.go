package ecs

import (
	canvas "github.com/seanblatter/lettuce-click-main-main-sub000"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for canvas engine events.
// Subscribe to this in your ECS systems to receive placement updates,
// drag lifecycle, stroke commits, and inventory order changes.
var EngineEventType = events.NewEventType[canvas.EngineEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Engine events are published to EngineEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) canvas.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event canvas.EngineEvent) {
	EngineEventType.Publish(s.world, event)
}

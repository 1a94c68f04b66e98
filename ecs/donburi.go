package ecs

import (
	"github.com/phanxgames/choreo"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TimelineEventType is the Donburi event type for choreo lifecycle events.
var TimelineEventType = events.NewEventType[choreo.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on TimelineEventType and delivered when the world processes events,
// so ECS systems observe them outside of Timeline.Step.
func NewDonburiSink(world donburi.World) choreo.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event choreo.Event) {
	TimelineEventType.Publish(s.world, event)
}

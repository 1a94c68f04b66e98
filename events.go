package choreo

// EventType identifies a lifecycle transition reported to an EventSink.
type EventType uint8

const (
	EventStart  EventType = iota // an item started playing
	EventFinish                  // an item reached its finishing boundary
	EventRemove                  // an item was removed from its timeline
)

// String returns a lower-case name for the event type.
func (e EventType) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFinish:
		return "finish"
	case EventRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Event describes a lifecycle transition of a Motion, Cue or Timeline.
type Event struct {
	Type EventType
	ID   uint32
	Name string
	Time float64 // local time when the event fired
}

// EventSink receives lifecycle events. When set on a Timeline, events from
// the timeline, its members and its groups are forwarded synchronously, in
// the order they happen.
type EventSink interface {
	EmitEvent(event Event)
}

// emit forwards ev to the nearest sink on the ownership chain starting at t.
func emit(t *Timeline, ev Event) {
	for ; t != nil; t = t.owner {
		if t.sink != nil {
			t.sink.EmitEvent(ev)
			return
		}
	}
}

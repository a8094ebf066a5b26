package ecs

// EventType identifies gameplay events raised by systems.
type EventType string

const (
	EventLanded    EventType = "landed"
	EventBounced   EventType = "bounced"
	EventHit       EventType = "hit"
	EventDeath     EventType = "death"
	EventDespawn   EventType = "despawn"
	EventRespawn   EventType = "respawn"
	EventStageLoad EventType = "stage_load"
)

// Event is one gameplay occurrence. Source is the entity that caused it
// (the attacker for hits) and may be zero.
type Event struct {
	Type   EventType
	Entity Entity
	Source Entity
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

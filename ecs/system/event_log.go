package system

import (
	"log"

	"github.com/milk9111/cavehop/ecs"
)

// EventLogSystem drains the event queue at the end of the frame. Lifecycle
// events are logged; every event is counted for the debug overlay.
type EventLogSystem struct {
	Verbose bool
	counts  map[ecs.EventType]int
	logf    func(format string, args ...any)
}

func NewEventLogSystem(verbose bool) *EventLogSystem {
	return &EventLogSystem{
		Verbose: verbose,
		counts:  map[ecs.EventType]int{},
		logf:    log.Printf,
	}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		s.counts[evt.Type]++
		switch evt.Type {
		case ecs.EventDeath, ecs.EventDespawn, ecs.EventRespawn, ecs.EventStageLoad:
			s.logf("event: %s entity=%v source=%v frame=%d", evt.Type, evt.Entity, evt.Source, w.Frame())
		default:
			if s.Verbose {
				s.logf("event: %s entity=%v source=%v value=%d frame=%d", evt.Type, evt.Entity, evt.Source, evt.Value, w.Frame())
			}
		}
	}
}

// Count returns how many events of type t were seen since the system was
// created.
func (s *EventLogSystem) Count(t ecs.EventType) int {
	return s.counts[t]
}

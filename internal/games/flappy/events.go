package flappy

import "strings"

// Event is a set of discrete things that happened during a tick.
// Single events are bit flags; Tick returns their union.
type Event uint8

const (
	EventStart   Event = 1 << iota // Idle -> Active
	EventRestart                   // Terminated -> Idle
	EventFlap                      // Flap impulse applied
	EventScore                     // At least one pair passed
	EventHit                       // Collision detected
	EventDie                       // Match ended
)

var eventOrder = []Event{EventStart, EventRestart, EventFlap, EventScore, EventHit, EventDie}

// Has reports whether all flags in other are set.
func (e Event) Has(other Event) bool {
	return other != 0 && e&other == other
}

// Each calls fn for every flag set, in pipeline order.
func (e Event) Each(fn func(Event)) {
	for _, f := range eventOrder {
		if e&f != 0 {
			fn(f)
		}
	}
}

// String returns the flag names joined with '|'.
func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	e.Each(func(f Event) {
		names = append(names, eventName(f))
	})
	return strings.Join(names, "|")
}

func eventName(e Event) string {
	switch e {
	case EventStart:
		return "start"
	case EventRestart:
		return "restart"
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventHit:
		return "hit"
	case EventDie:
		return "die"
	default:
		return "unknown"
	}
}

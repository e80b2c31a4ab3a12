package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventHalt       EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TransitionEvent is emitted after every derived transition.
type TransitionEvent struct {
	EventBase
	Index int    `json:"index"` // 1-based transition count
	From  string `json:"from"`
	To    string `json:"to"`
	Label Label  `json:"label"`
	Steps int    `json:"steps"` // length of the derivation
}

// HaltEvent is emitted once when the driver stops.
type HaltEvent struct {
	EventBase
	Reason      HaltReason `json:"reason"`
	Transitions int        `json:"transitions"`
	Final       string     `json:"final"`
}

// LifecycleHooks defines callbacks for driver observability.
// Nil hooks are skipped.
type LifecycleHooks struct {
	OnTransition func(*TransitionEvent)
	OnHalt       func(*HaltEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition: chain(h.OnTransition, other.OnTransition),
		OnHalt:       chain(h.OnHalt, other.OnHalt),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}

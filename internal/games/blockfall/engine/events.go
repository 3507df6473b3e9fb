package engine

import "time"

// EventType identifies a session notification.
type EventType int

const (
	EventGameDidBegin EventType = iota
	EventGameDidEnd
	EventShapeDidSpawn
	EventShapeDidMove
	EventShapeDidDrop
	EventShapeDidLand
	EventGameDidLevelUp
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventGameDidBegin:
		return "GameDidBegin"
	case EventGameDidEnd:
		return "GameDidEnd"
	case EventShapeDidSpawn:
		return "ShapeDidSpawn"
	case EventShapeDidMove:
		return "ShapeDidMove"
	case EventShapeDidDrop:
		return "ShapeDidDrop"
	case EventShapeDidLand:
		return "ShapeDidLand"
	case EventGameDidLevelUp:
		return "GameDidLevelUp"
	default:
		return "Unknown"
	}
}

// Event is a notification appended by the session once its state is
// consistent. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	Score        int
	Level        int
	Lines        int // total lines cleared in the session
	TickInterval time.Duration

	// Shape is a detached copy of the falling shape (move, drop, land, spawn).
	Shape *Shape
	// Next is a copy of the preview shape (spawn).
	Next *Shape
	// DropRows is how far a hard drop travelled.
	DropRows int
	// Clears holds every clear-and-collapse pass triggered by a landing.
	Clears []LineClear
}

// LinesRemoved returns how many rows the event's clears removed.
func (e Event) LinesRemoved() int {
	n := 0
	for _, c := range e.Clears {
		n += c.Lines()
	}
	return n
}

// EventQueue collects events for the presentation layer to drain.
// It is owned by a single session and not safe for concurrent use.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns all pending events in order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Reset discards pending events.
func (q *EventQueue) Reset() {
	q.events = nil
}

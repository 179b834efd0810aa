package engine

// EventType is a discrete input the lock controller consumes.
type EventType int

const (
	EventMoveDown EventType = iota
	EventFastDrop
	EventMoveLeft
	EventMoveRight
	EventRotate
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventMoveDown:
		return "MoveDown"
	case EventFastDrop:
		return "FastDrop"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// EventSource tells whether an event came from the player or the gravity tick.
type EventSource int

const (
	SourceUser EventSource = iota
	SourceTimer
)

// String returns a human-readable name for the source.
func (s EventSource) String() string {
	if s == SourceTimer {
		return "Timer"
	}
	return "User"
}

// MoveEvent is one input event tagged with its source.
type MoveEvent struct {
	Type   EventType
	Source EventSource
}

// UserEvent is shorthand for a player-sourced event.
func UserEvent(t EventType) MoveEvent {
	return MoveEvent{Type: t, Source: SourceUser}
}

// TimerEvent is shorthand for a tick-sourced event.
func TimerEvent(t EventType) MoveEvent {
	return MoveEvent{Type: t, Source: SourceTimer}
}

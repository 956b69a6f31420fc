package sim

// Event is a transient simulation signal emitted for a single tick.
// Events are never stored; the host reacts (incrementing the death counter,
// requesting the next level) and discards them.
type Event int

const (
	EventNone Event = iota
	EventPlayerDied
	EventLevelCompleted
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventPlayerDied:
		return "PlayerDied"
	case EventLevelCompleted:
		return "LevelCompleted"
	default:
		return "Unknown"
	}
}

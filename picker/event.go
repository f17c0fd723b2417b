package picker

// EventType identifies a host event the runtime reacts to
type EventType string

const (
	Click   EventType = "click"
	KeyDown EventType = "keydown"
	Change  EventType = "change"
)

// EscapeKey cancels an armed picker
const EscapeKey = "Escape"

// Event represents a discrete user interaction delivered by the host
type Event struct {
	Type   EventType
	Target Element
	Key    string // KeyDown only
	Value  string // Change only

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault suppresses the host default action
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// StopPropagation stops delivery to further handlers
func (e *Event) StopPropagation() { e.propagationStopped = true }

// DefaultPrevented reports whether the host should skip its default action
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// PropagationStopped reports whether the event was consumed
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// NewClick creates a click event on target
func NewClick(target Element) *Event {
	return &Event{Type: Click, Target: target}
}

// NewKeyDown creates a key event
func NewKeyDown(key string) *Event {
	return &Event{Type: KeyDown, Key: key}
}

// NewChange creates a change event carrying the new value of target
func NewChange(target Element, value string) *Event {
	return &Event{Type: Change, Target: target, Value: value}
}

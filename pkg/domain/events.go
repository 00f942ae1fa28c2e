package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EventType defines the kind of pointer input.
type EventType int

const (
	EventPress EventType = iota + 1
	EventMove
	EventRelease
)

var eventTypeNames = map[EventType]string{
	EventPress:   "press",
	EventMove:    "move",
	EventRelease: "release",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// ParseEventType resolves "press", "move" or "release".
func ParseEventType(name string) (EventType, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	for t, n := range eventTypeNames {
		if n == clean {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// Button identifies the pointer button involved in an event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

var buttonNames = map[Button]string{
	ButtonNone:   "none",
	ButtonLeft:   "left",
	ButtonRight:  "right",
	ButtonMiddle: "middle",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// ParseButton resolves a button name. The empty string maps to ButtonLeft.
func ParseButton(name string) (Button, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	if clean == "" {
		return ButtonLeft, nil
	}
	for b, n := range buttonNames {
		if n == clean {
			return b, nil
		}
	}
	return ButtonNone, fmt.Errorf("unknown button %q", name)
}

// Event is a raw pointer input observed by the presentation layer.
// X and Y are global (screen) coordinates in pixels.
type Event struct {
	Type   EventType
	Button Button
	X, Y   int
}

// Press builds a left-button press event.
func Press(x, y int) Event { return Event{Type: EventPress, Button: ButtonLeft, X: x, Y: y} }

// Move builds a pointer motion event.
func Move(x, y int) Event { return Event{Type: EventMove, Button: ButtonLeft, X: x, Y: y} }

// Release builds a left-button release event.
func Release(x, y int) Event { return Event{Type: EventRelease, Button: ButtonLeft, X: x, Y: y} }

// StateEvent describes the entry into or exit from a state.
type StateEvent struct {
	Timestamp time.Time `json:"timestamp"`
	State     PetState  `json:"state"`
	Depth     int       `json:"depth"` // stack size after the change
}

// InputEvent describes an event routed to the active handler.
type InputEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Event     Event     `json:"event"`
	State     PetState  `json:"state"`
	Consumed  bool      `json:"consumed"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run on the dispatch sequence and must not block.
type LifecycleHooks struct {
	OnStateEnter func(context.Context, *StateEvent)
	OnStateExit  func(context.Context, *StateEvent)
	OnEvent      func(context.Context, *InputEvent)
}

package domain

import (
	"fmt"
	"strings"
)

// PetState is a behavior mode of the pet.
// The set is closed: the engine only knows the states declared below.
type PetState int

const (
	// StateIdle is the base state. It is always at the bottom of the stack.
	StateIdle PetState = iota
	// StateClicked plays a reaction after a click and expires on a timer.
	StateClicked
	// StateDragging follows the pointer while a button is held.
	StateDragging
	// StateRandomMove walks the pet around on its own.
	StateRandomMove
)

// States lists every known PetState in declaration order.
var States = []PetState{StateIdle, StateClicked, StateDragging, StateRandomMove}

var stateNames = map[PetState]string{
	StateIdle:       "IDLE",
	StateClicked:    "CLICKED",
	StateDragging:   "DRAGGING",
	StateRandomMove: "RANDOM_MOVE",
}

// String returns the canonical upper-case name of the state.
func (s PetState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PetState(%d)", int(s))
}

// Valid reports whether s belongs to the closed set of states.
func (s PetState) Valid() bool {
	_, ok := stateNames[s]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (s PetState) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PetState) UnmarshalText(text []byte) error {
	parsed, err := ParsePetState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParsePetState resolves a state name. Matching is case-insensitive and
// accepts '-' in place of '_' (e.g. "random-move").
func ParsePetState(name string) (PetState, error) {
	clean := strings.ToUpper(strings.TrimSpace(name))
	clean = strings.ReplaceAll(clean, "-", "_")
	for state, n := range stateNames {
		if n == clean {
			return state, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

package runtime

import (
	"fmt"

	"github.com/aretw0/doro/pkg/domain"
)

// stateHandler is the behavior attached to one PetState.
// The set of implementations is closed; see newHandler.
type stateHandler interface {
	onEnter()
	onExit()
	handleEvent(ev domain.Event) bool
	updateConfig()
}

// newHandler builds the handler for state. Every PetState must have a case.
func newHandler(state domain.PetState, m *Machine) stateHandler {
	switch state {
	case domain.StateIdle:
		return newIdleHandler(m)
	case domain.StateClicked:
		return newClickedHandler(m)
	case domain.StateDragging:
		return newDraggingHandler(m)
	case domain.StateRandomMove:
		return newRandomMoveHandler(m)
	default:
		panic(fmt.Sprintf("runtime: no handler for %s", state))
	}
}

package runtime

import "github.com/aretw0/doro/pkg/domain"

// stateStack is the history of active and suspended states.
// It is never empty: the bottom element is the base state.
type stateStack struct {
	items []domain.PetState
}

func newStateStack(base domain.PetState) stateStack {
	return stateStack{items: []domain.PetState{base}}
}

func (s *stateStack) top() domain.PetState {
	return s.items[len(s.items)-1]
}

func (s *stateStack) size() int {
	return len(s.items)
}

func (s *stateStack) push(state domain.PetState) {
	s.items = append(s.items, state)
}

// pop removes the top element. It refuses to remove the base and reports whether it did anything.
func (s *stateStack) pop() bool {
	if len(s.items) <= 1 {
		return false
	}
	s.items = s.items[:len(s.items)-1]
	return true
}

func (s *stateStack) replace(state domain.PetState) {
	s.items[len(s.items)-1] = state
}

func (s *stateStack) snapshot() []domain.PetState {
	out := make([]domain.PetState, len(s.items))
	copy(out, s.items)
	return out
}

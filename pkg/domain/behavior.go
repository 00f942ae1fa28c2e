package domain

// TransitionKind is the stack operation an edge performs.
type TransitionKind int

const (
	KindPush TransitionKind = iota
	KindPop
	KindReplace
)

func (k TransitionKind) String() string {
	switch k {
	case KindPush:
		return "push"
	case KindPop:
		return "pop"
	default:
		return "transition"
	}
}

// Edge describes one transition the built-in behavior can take.
// For KindPop, To is the state underneath in the common case.
type Edge struct {
	From    PetState
	To      PetState
	Kind    TransitionKind
	Trigger string
}

// StateDoc summarizes a state for help output.
type StateDoc struct {
	State  PetState
	Enter  string
	Events string
	Leaves string
}

// Behavior lists the edges of the built-in behavior, for documentation and diagrams.
var Behavior = []Edge{
	{StateIdle, StateClicked, KindPush, "click"},
	{StateIdle, StateDragging, KindPush, "press + move"},
	{StateIdle, StateRandomMove, KindPush, "wander timer"},
	{StateClicked, StateDragging, KindPush, "press"},
	{StateClicked, StateIdle, KindPop, "click duration"},
	{StateDragging, StateIdle, KindPop, "release"},
	{StateRandomMove, StateClicked, KindReplace, "click"},
	{StateRandomMove, StateDragging, KindReplace, "press + move"},
	{StateRandomMove, StateIdle, KindPop, "leg ends / movement disabled"},
}

// StateDocs describes every state, in enum order.
var StateDocs = []StateDoc{
	{StateIdle, "idle animation, optional ambient sound, arms the wander timer", "click, drag", "never (base state)"},
	{StateClicked, "click animation and sound, arms the expiry timer", "press starts a drag", "expiry timer"},
	{StateDragging, "anchors at the press position", "moves are forwarded to the window", "pointer release"},
	{StateRandomMove, "walk animation, mirrored when walking left", "click, drag", "leg ends with a stay pick, or movement disabled"},
}

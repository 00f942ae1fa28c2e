package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/doro/pkg/domain"
)

// Overlay contains live state data to visualize on the diagram.
type Overlay struct {
	Stack []domain.PetState // bottom first; the last element is current
}

// GenerateMermaid produces a Mermaid flowchart from behavior edges.
// Shapes follow the role of the state:
// - Base (IDLE): ((Circle))
// - Autonomous (RANDOM_MOVE): [[Subroutine]]
// - Default: [Rectangle]
// Pops are drawn dotted, lateral transitions thick.
func GenerateMermaid(edges []domain.Edge, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[domain.PetState]bool)
	for _, state := range domain.States {
		if !usesState(edges, state) {
			continue
		}
		seen[state] = true
		opener, closer := "[", "]"
		switch state {
		case domain.StateIdle:
			opener, closer = "((", "))" // Circle
		case domain.StateRandomMove:
			opener, closer = "[[", "]]" // Subroutine
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(state), opener, state, closer))
	}

	for _, e := range edges {
		label := strings.ReplaceAll(e.Trigger, "\"", "'")
		var arrow string
		switch e.Kind {
		case domain.KindPop:
			arrow = fmt.Sprintf("-. \"%s\" .->", label)
		case domain.KindReplace:
			arrow = fmt.Sprintf("== \"%s\" ==>", label)
		default:
			arrow = fmt.Sprintf("-- \"%s\" -->", label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", nodeID(e.From), arrow, nodeID(e.To)))
	}

	// Apply Overlay Styles
	if overlay != nil && len(overlay.Stack) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef suspended fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		top := len(overlay.Stack) - 1
		styled := make(map[domain.PetState]bool)
		for i := top - 1; i >= 0; i-- {
			s := overlay.Stack[i]
			if s == overlay.Stack[top] || styled[s] || !seen[s] {
				continue
			}
			styled[s] = true
			sb.WriteString(fmt.Sprintf("    class %s suspended;\n", nodeID(s)))
		}
		sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(overlay.Stack[top])))
	}

	return sb.String()
}

func usesState(edges []domain.Edge, state domain.PetState) bool {
	for _, e := range edges {
		if e.From == state || e.To == state {
			return true
		}
	}
	return false
}

func nodeID(state domain.PetState) string {
	return strings.ToLower(state.String())
}

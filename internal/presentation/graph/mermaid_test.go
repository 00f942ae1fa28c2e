package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/doro/internal/presentation/graph"
	"github.com/aretw0/doro/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		edges    []domain.Edge
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:  "Shapes",
			edges: domain.Behavior,
			contains: []string{
				"idle((\"IDLE\"))",
				"random_move[[\"RANDOM_MOVE\"]]",
				"clicked[\"CLICKED\"]",
			},
		},
		{
			name: "Edge Styles",
			edges: []domain.Edge{
				{From: domain.StateIdle, To: domain.StateClicked, Kind: domain.KindPush, Trigger: "click"},
				{From: domain.StateClicked, To: domain.StateIdle, Kind: domain.KindPop, Trigger: "timer"},
				{From: domain.StateRandomMove, To: domain.StateDragging, Kind: domain.KindReplace, Trigger: "say \"hi\""},
			},
			contains: []string{
				"idle -- \"click\" --> clicked",
				"clicked -. \"timer\" .-> idle",
				"random_move == \"say 'hi'\" ==> dragging",
			},
		},
		{
			name:  "Unused States Omitted",
			edges: []domain.Edge{{From: domain.StateIdle, To: domain.StateClicked, Kind: domain.KindPush}},
			excludes: []string{
				"dragging[",
			},
		},
		{
			name:    "Overlay",
			edges:   domain.Behavior,
			overlay: &graph.Overlay{Stack: []domain.PetState{domain.StateIdle, domain.StateClicked, domain.StateDragging}},
			contains: []string{
				"class dragging current;",
				"class clicked suspended;",
				"class idle suspended;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.edges, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

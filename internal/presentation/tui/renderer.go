package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/doro/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// With plain set, no ANSI styling is emitted (for pipes and tests).
func NewRenderer(plain bool) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle() // Automatically detect light/dark background
	if plain {
		opt = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// StatesMarkdown builds a markdown table describing the states.
// The current state, if valid, is highlighted.
func StatesMarkdown(docs []domain.StateDoc, current domain.PetState) string {
	var b strings.Builder
	b.WriteString("# Behavior states\n\n")
	b.WriteString("| State | On enter | Reacts to | Leaves when |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, d := range docs {
		name := "`" + d.State.String() + "`"
		if d.State == current {
			name = "**" + name + "**"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", name, d.Enter, d.Events, d.Leaves)
	}
	return b.String()
}

package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/doro/pkg/domain"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3\n", domain.LookupTheme("blue"))

	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), `| (_| | (_) | | | (_) |`)
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStatus(&buf, domain.LookupTheme("pink"), "state", "IDLE")
	assert.Contains(t, buf.String(), "state:")
	assert.Contains(t, buf.String(), "IDLE")
}

func TestStatesMarkdown(t *testing.T) {
	md := StatesMarkdown([]domain.StateDoc{
		{State: domain.StateIdle, Enter: "idle animation", Events: "press", Leaves: "never"},
		{State: domain.StateClicked, Enter: "reaction", Events: "press", Leaves: "timer"},
	}, domain.StateIdle)
	assert.Contains(t, md, "| **`IDLE`** | idle animation | press | never |")
	assert.Contains(t, md, "| `CLICKED` |")

	render, err := NewRenderer(true)
	require.NoError(t, err)
	out, err := render(md)
	require.NoError(t, err)
	assert.Contains(t, out, "CLICKED")
}

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/doro/pkg/domain"
)

var bannerLines = []string{
	`     _                 `,
	`  __| | ___  _ __ ___  `,
	` / _' |/ _ \| '__/ _ \ `,
	`| (_| | (_) | | | (_) |`,
	` \__,_|\___/|_|  \___/ `,
}

// PrintBanner writes the doro banner to w in the colors of theme.
// Colors are dropped when w is not a terminal.
func PrintBanner(w io.Writer, version string, theme domain.Theme) {
	out := termenv.NewOutput(w)
	palette := []string{theme.Primary, theme.Secondary, theme.Border, theme.Secondary, theme.Primary}

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, out.String(line).Foreground(out.Color(palette[i%len(palette)])))
	}
	fmt.Fprintln(w, out.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}

// PrintStatus writes a "label: value" line with the label in the theme's primary color.
func PrintStatus(w io.Writer, theme domain.Theme, label, value string) {
	out := termenv.NewOutput(w)
	fmt.Fprintf(w, "%s %s\n", out.String(label+":").Foreground(out.Color(theme.Primary)).Bold(), value)
}

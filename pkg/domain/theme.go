package domain

import "sort"

// Theme is a named palette for the info panel. Colors are CSS-style strings.
type Theme struct {
	Name       string
	Primary    string
	Secondary  string
	Background string
	Text       string
	Border     string
}

// DefaultTheme is used when the configured theme is unknown.
const DefaultTheme = "pink"

var themes = map[string]Theme{
	"pink":   {Name: "pink", Primary: "#FF69B4", Secondary: "#FFB6C1", Background: "#FFF0F5", Text: "#333333", Border: "#FFC0CB"},
	"blue":   {Name: "blue", Primary: "#4169E1", Secondary: "#87CEEB", Background: "#F0F8FF", Text: "#333333", Border: "#4169E1"},
	"purple": {Name: "purple", Primary: "#9370DB", Secondary: "#DDA0DD", Background: "#F8F8FF", Text: "#333333", Border: "#9370DB"},
	"green":  {Name: "green", Primary: "#2E8B57", Secondary: "#98FB98", Background: "#F0FFF0", Text: "#333333", Border: "#2E8B57"},
	"orange": {Name: "orange", Primary: "#FF8C00", Secondary: "#FFA07A", Background: "#FFFAF0", Text: "#333333", Border: "#FF8C00"},
}

// LookupTheme returns the named theme, falling back to DefaultTheme.
func LookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames returns the built-in theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

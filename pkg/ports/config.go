package ports

import "context"

// ConfigValues holds raw configuration as section -> option -> value.
type ConfigValues map[string]map[string]any

// Clone returns a deep copy of the two-level map.
func (v ConfigValues) Clone() ConfigValues {
	out := make(ConfigValues, len(v))
	for section, opts := range v {
		copied := make(map[string]any, len(opts))
		for k, val := range opts {
			copied[k] = val
		}
		out[section] = copied
	}
	return out
}

// ConfigReader exposes typed configuration getters keyed by section and option.
// The fallback is returned when the option is absent or cannot be coerced.
type ConfigReader interface {
	Bool(section, option string, fallback bool) bool
	Int(section, option string, fallback int) int
	String(section, option, fallback string) string
}

// ConfigStore persists configuration values.
type ConfigStore interface {
	// Load returns the stored values. A store with nothing saved yet returns an empty map.
	Load(ctx context.Context) (ConfigValues, error)

	// Save replaces the stored values.
	Save(ctx context.Context, values ConfigValues) error
}

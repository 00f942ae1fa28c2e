package config

import (
	"fmt"
	"sync"

	"github.com/aretw0/doro/pkg/ports"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config is the live configuration. It implements ports.ConfigReader.
type Config struct {
	mu     sync.RWMutex
	values ports.ConfigValues
}

var _ ports.ConfigReader = (*Config)(nil)

// New creates a Config holding the defaults, overlaid with the given values.
func New(overrides ...ports.ConfigValues) *Config {
	c := &Config{values: Defaults()}
	for _, o := range overrides {
		merge(c.values, o)
	}
	return c
}

// Replace resets the configuration to the defaults overlaid with values.
func (c *Config) Replace(values ports.ConfigValues) {
	next := Defaults()
	merge(next, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = next
}

// Set changes a single option.
func (c *Config) Set(section, option string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values[section] == nil {
		c.values[section] = map[string]any{}
	}
	c.values[section][option] = value
}

// Values returns a deep copy of the current values.
func (c *Config) Values() ports.ConfigValues {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values.Clone()
}

func (c *Config) lookup(section, option string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	opts, ok := c.values[section]
	if !ok {
		return nil, false
	}
	v, ok := opts[option]
	return v, ok
}

// Bool returns a boolean option, or fallback.
func (c *Config) Bool(section, option string, fallback bool) bool {
	raw, ok := c.lookup(section, option)
	if !ok {
		return fallback
	}
	var out bool
	if err := mapstructure.WeakDecode(raw, &out); err != nil {
		return fallback
	}
	return out
}

// Int returns an integer option, or fallback.
func (c *Config) Int(section, option string, fallback int) int {
	raw, ok := c.lookup(section, option)
	if !ok {
		return fallback
	}
	var out int
	if err := mapstructure.WeakDecode(raw, &out); err != nil {
		return fallback
	}
	return out
}

// String returns a string option, or fallback.
func (c *Config) String(section, option, fallback string) string {
	raw, ok := c.lookup(section, option)
	if !ok {
		return fallback
	}
	var out string
	if err := mapstructure.WeakDecode(raw, &out); err != nil {
		return fallback
	}
	return out
}

// LoadYAML merges a YAML document into the configuration.
func (c *Config) LoadYAML(data []byte) error {
	values, err := ParseYAML(data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	merge(c.values, values)
	return nil
}

// EncodeYAML encodes the current values as a YAML document.
func (c *Config) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(c.Values())
}

// ParseYAML decodes a YAML document into raw values.
func ParseYAML(data []byte) (ports.ConfigValues, error) {
	values := ports.ConfigValues{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	return values, nil
}

func merge(dst, src ports.ConfigValues) {
	for section, opts := range src {
		if dst[section] == nil {
			dst[section] = map[string]any{}
		}
		for k, v := range opts {
			dst[section][k] = v
		}
	}
}

package config

import (
	"errors"
	"fmt"

	"github.com/aretw0/doro/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Settings is a typed snapshot of the configuration.
type Settings struct {
	Window struct {
		Width      int  `mapstructure:"Width"`
		Height     int  `mapstructure:"Height"`
		StaysOnTop bool `mapstructure:"StaysOnTop"`
		Frameless  bool `mapstructure:"Frameless"`
	} `mapstructure:"Window"`
	Animation struct {
		FPS int `mapstructure:"FPS"`
	} `mapstructure:"Animation"`
	Random struct {
		Interval   int `mapstructure:"Interval"`
		StayWeight int `mapstructure:"StayWeight"`
		WalkWeight int `mapstructure:"WalkWeight"`
	} `mapstructure:"Random"`
	Info struct {
		ShowInfo bool `mapstructure:"ShowInfo"`
		Gap      int  `mapstructure:"Gap"`
	} `mapstructure:"Info"`
	Theme struct {
		Current string `mapstructure:"Current"`
	} `mapstructure:"Theme"`
	Workspace struct {
		AllowRandomMovement bool `mapstructure:"AllowRandomMovement"`
	} `mapstructure:"Workspace"`
	Behavior struct {
		ClickDurationMs int `mapstructure:"ClickDurationMs"`
		DragThreshold   int `mapstructure:"DragThreshold"`
		WalkDurationMs  int `mapstructure:"WalkDurationMs"`
		WalkStepPx      int `mapstructure:"WalkStepPx"`
	} `mapstructure:"Behavior"`
	Audio struct {
		Enabled     bool `mapstructure:"Enabled"`
		AmbientIdle bool `mapstructure:"AmbientIdle"`
	} `mapstructure:"Audio"`
}

// Settings decodes the current values into a typed snapshot.
func (c *Config) Settings() (Settings, error) {
	var s Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &s,
	})
	if err != nil {
		return s, err
	}
	if err := decoder.Decode(map[string]map[string]any(c.Values())); err != nil {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// ThemePalette returns the palette selected by Theme.Current.
func (s Settings) ThemePalette() domain.Theme {
	return domain.LookupTheme(s.Theme.Current)
}

// Validate reports every out-of-range value.
func (s Settings) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("Window.Width", s.Window.Width)
	positive("Window.Height", s.Window.Height)
	positive("Animation.FPS", s.Animation.FPS)
	positive("Random.Interval", s.Random.Interval)
	positive("Behavior.ClickDurationMs", s.Behavior.ClickDurationMs)
	positive("Behavior.WalkDurationMs", s.Behavior.WalkDurationMs)
	positive("Behavior.WalkStepPx", s.Behavior.WalkStepPx)
	if s.Behavior.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("Behavior.DragThreshold must not be negative, got %d", s.Behavior.DragThreshold))
	}
	if s.Random.StayWeight < 0 || s.Random.WalkWeight < 0 {
		errs = append(errs, errors.New("Random weights must not be negative"))
	}
	if s.Info.Gap < 0 {
		errs = append(errs, fmt.Errorf("Info.Gap must not be negative, got %d", s.Info.Gap))
	}
	return errors.Join(errs...)
}

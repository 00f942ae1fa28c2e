package config

import "github.com/aretw0/doro/pkg/ports"

// Section names.
const (
	SectionWindow    = "Window"
	SectionAnimation = "Animation"
	SectionRandom    = "Random"
	SectionInfo      = "Info"
	SectionTheme     = "Theme"
	SectionWorkspace = "Workspace"
	SectionBehavior  = "Behavior"
	SectionAudio     = "Audio"
)

// Option names, grouped by section.
const (
	OptWidth      = "Width"
	OptHeight     = "Height"
	OptStaysOnTop = "StaysOnTop"
	OptFrameless  = "Frameless"

	OptFPS = "FPS"

	OptInterval   = "Interval"
	OptStayWeight = "StayWeight"
	OptWalkWeight = "WalkWeight"

	OptShowInfo = "ShowInfo"
	OptGap      = "Gap"

	OptCurrent = "Current"

	OptAllowRandomMovement = "AllowRandomMovement"

	OptClickDurationMs = "ClickDurationMs"
	OptDragThreshold   = "DragThreshold"
	OptWalkDurationMs  = "WalkDurationMs"
	OptWalkStepPx      = "WalkStepPx"

	OptEnabled     = "Enabled"
	OptAmbientIdle = "AmbientIdle"
)

// Default values. They mirror the settings the pet shipped with.
const (
	DefaultWidth           = 200
	DefaultHeight          = 200
	DefaultFPS             = 30
	DefaultRandomInterval  = 5 // seconds
	DefaultStayWeight      = 3
	DefaultWalkWeight      = 1
	DefaultInfoGap         = 24
	DefaultClickDurationMs = 18000
	DefaultDragThreshold   = 5
	DefaultWalkDurationMs  = 3000
	DefaultWalkStepPx      = 4
)

// Defaults returns a fresh copy of the default configuration.
func Defaults() ports.ConfigValues {
	return ports.ConfigValues{
		SectionWindow: {
			OptWidth:      DefaultWidth,
			OptHeight:     DefaultHeight,
			OptStaysOnTop: true,
			OptFrameless:  true,
		},
		SectionAnimation: {
			OptFPS: DefaultFPS,
		},
		SectionRandom: {
			OptInterval:   DefaultRandomInterval,
			OptStayWeight: DefaultStayWeight,
			OptWalkWeight: DefaultWalkWeight,
		},
		SectionInfo: {
			OptShowInfo: true,
			OptGap:      DefaultInfoGap,
		},
		SectionTheme: {
			OptCurrent: "pink",
		},
		SectionWorkspace: {
			OptAllowRandomMovement: true,
		},
		SectionBehavior: {
			OptClickDurationMs: DefaultClickDurationMs,
			OptDragThreshold:   DefaultDragThreshold,
			OptWalkDurationMs:  DefaultWalkDurationMs,
			OptWalkStepPx:      DefaultWalkStepPx,
		},
		SectionAudio: {
			OptEnabled:     true,
			OptAmbientIdle: false,
		},
	}
}

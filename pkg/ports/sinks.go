package ports

// AnimationPlayer presents an animation asset.
// Implementations must not block the caller; an error leaves the previous animation visible.
type AnimationPlayer interface {
	PlayAnimation(asset string, mirror bool) error
}

// AudioPlayer plays short audio assets, one at a time.
type AudioPlayer interface {
	PlayAudio(asset string) error
	StopAudio()
}

// Mover moves the pet window by a delta in pixels.
type Mover interface {
	RequestMove(dx, dy int)
}

// InfoDisplay toggles the info panel next to the pet.
type InfoDisplay interface {
	SetInfoVisible(visible bool)
}

// TextSink is a single text widget (e.g. the CPU label of the info panel).
type TextSink interface {
	SetText(text string)
}

// TextSinkFunc adapts a function to TextSink.
type TextSinkFunc func(text string)

// SetText calls f(text).
func (f TextSinkFunc) SetText(text string) { f(text) }

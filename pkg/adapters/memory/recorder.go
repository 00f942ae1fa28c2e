package memory

import (
	"fmt"
	"sync"

	"github.com/aretw0/doro/pkg/domain"
)

// Play is one recorded PlayAnimation call.
type Play struct {
	Asset  string
	Mirror bool
}

// Move is one recorded RequestMove call.
type Move struct {
	DX, DY int
}

// Recorder implements every capability sink and records what it was asked
// to do. Assets listed in Missing fail with domain.ErrResourceMissing and
// leave the recorded state untouched.
// Safe for concurrent use.
type Recorder struct {
	mu sync.Mutex

	Missing map[string]bool

	animation   string
	mirror      bool
	audio       string
	animations  []Play
	sounds      []string
	stops       int
	moves       []Move
	infoVisible bool
	infoCalls   int
}

// NewRecorder creates a recorder that fails for the given assets.
func NewRecorder(missing ...string) *Recorder {
	r := &Recorder{Missing: make(map[string]bool)}
	for _, m := range missing {
		r.Missing[m] = true
	}
	return r
}

func (r *Recorder) PlayAnimation(asset string, mirror bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Missing[asset] {
		return fmt.Errorf("animation %q: %w", asset, domain.ErrResourceMissing)
	}
	r.animation, r.mirror = asset, mirror
	r.animations = append(r.animations, Play{Asset: asset, Mirror: mirror})
	return nil
}

func (r *Recorder) PlayAudio(asset string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Missing[asset] {
		return fmt.Errorf("audio %q: %w", asset, domain.ErrResourceMissing)
	}
	r.audio = asset
	r.sounds = append(r.sounds, asset)
	return nil
}

func (r *Recorder) StopAudio() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audio = ""
	r.stops++
}

func (r *Recorder) RequestMove(dx, dy int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves = append(r.moves, Move{DX: dx, DY: dy})
}

func (r *Recorder) SetInfoVisible(visible bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infoVisible = visible
	r.infoCalls++
}

// Animation returns the asset currently shown and whether it is mirrored.
func (r *Recorder) Animation() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.animation, r.mirror
}

// Animations returns every successful PlayAnimation call in order.
func (r *Recorder) Animations() []Play {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Play(nil), r.animations...)
}

// Audio returns the asset currently playing, or "" after StopAudio.
func (r *Recorder) Audio() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.audio
}

// Sounds returns every successful PlayAudio call in order.
func (r *Recorder) Sounds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.sounds...)
}

// Stops returns the number of StopAudio calls.
func (r *Recorder) Stops() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stops
}

// Moves returns every RequestMove call in order.
func (r *Recorder) Moves() []Move {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Move(nil), r.moves...)
}

// Offset returns the sum of all recorded moves.
func (r *Recorder) Offset() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var x, y int
	for _, m := range r.moves {
		x += m.DX
		y += m.DY
	}
	return x, y
}

// InfoVisible returns the last visibility set and how many times it was set.
func (r *Recorder) InfoVisible() (bool, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.infoVisible, r.infoCalls
}

// Package audio plays wav assets through a beep mixer.
package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	// DefaultSampleRate is the rate the speaker is opened with.
	DefaultSampleRate = beep.SampleRate(44100)

	resampleQuality = 4
)

// Player decodes wav assets into a mixer. Until Init opens the speaker the
// mixer just accumulates streamers, which is enough for headless runs.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player that mixes at rate.
func NewPlayer(rate beep.SampleRate) *Player {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Player{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts streaming the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.StopAudio()

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Close()
	p.initialized = false
}

// PlayAudio decodes the wav file at asset and mixes it in.
func (p *Player) PlayAudio(asset string) error {
	f, err := os.Open(asset)
	if err != nil {
		return fmt.Errorf("failed to open audio: %w", err)
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode %s: %w", asset, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != p.rate {
		source = beep.Resample(resampleQuality, format.SampleRate, p.rate, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: format.Precision})
	buf.Append(source)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", asset, err)
	}

	p.locked(func() { p.mixer.Add(buf.Streamer(0, buf.Len())) })
	return nil
}

// StopAudio drops every sound currently in the mixer.
func (p *Player) StopAudio() {
	p.locked(func() { p.mixer.Clear() })
}

// Playing returns the number of sounds in the mixer.
func (p *Player) Playing() int {
	var n int
	p.locked(func() { n = p.mixer.Len() })
	return n
}

// locked runs fn while the mixer is not being streamed.
func (p *Player) locked(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

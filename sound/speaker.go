// Package sound connects effects to the audio device through beep's speaker.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is the device rate; decoded files are resampled to it.
const DefaultSampleRate = beep.SampleRate(48000)

// Speaker owns the process-wide beep speaker and a mixer every sound is
// played through.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an uninitialized speaker.
func NewSpeaker(rate beep.SampleRate) *Speaker {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Speaker{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio device with a buffer of the given length.
// Calling it again is a no-op.
func (s *Speaker) Init(buffer time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(buffer)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}

// Play mixes st into the output. Before Init it is refused.
func (s *Speaker) Play(st beep.Streamer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return false
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
	return true
}

// Lock blocks the audio goroutine so streamer state can be changed safely.
func (s *Speaker) Lock() {
	if s.Ready() {
		speaker.Lock()
	}
}

func (s *Speaker) Unlock() {
	if s.Ready() {
		speaker.Unlock()
	}
}

// Ready reports whether Init succeeded.
func (s *Speaker) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Active returns the number of streamers still playing.
func (s *Speaker) Active() int {
	if !s.Ready() {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

// Close silences everything and closes the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

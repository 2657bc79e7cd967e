package fx

import (
	"math"
	"os"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/ebiten/v2"
)

// Player is the audio output an ExplosionSound plays through. Play reports
// whether the streamer was accepted. Lock and Unlock guard streamers the
// player is currently reading.
type Player interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer) bool
	Lock()
	Unlock()
}

// ExplosionSound plays a WAV file once. It finishes when playback stops.
// If the file cannot be opened or decoded nothing plays and the effect
// finishes on its first update.
type ExplosionSound struct {
	player Player
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	done   atomic.Bool
	err    error
}

// NewExplosionSound starts playback of path at volume, where 100 is the
// file's own level and 0 is silent.
func NewExplosionSound(player Player, path string, volume float64) *ExplosionSound {
	s := &ExplosionSound{player: player}
	if player == nil {
		s.done.Store(true)
		return s
	}

	f, err := os.Open(path)
	if err != nil {
		s.fail(err)
		return s
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		s.fail(err)
		return s
	}
	s.stream = stream

	var src beep.Streamer = stream
	if rate := player.SampleRate(); format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, src)
	}

	vol := &effects.Volume{
		Streamer: src,
		Base:     2,
		Silent:   volume <= 0,
	}
	if volume > 0 {
		vol.Volume = math.Log2(volume / 100)
	}

	s.ctrl = &beep.Ctrl{Streamer: beep.Seq(vol, beep.Callback(func() {
		s.done.Store(true)
	}))}
	if !player.Play(s.ctrl) {
		s.ctrl = nil
		s.done.Store(true)
	}
	return s
}

func (s *ExplosionSound) fail(err error) {
	s.err = err
	s.done.Store(true)
}

// Update reports whether playback has stopped.
func (s *ExplosionSound) Update(float64) bool {
	return s.done.Load()
}

func (s *ExplosionSound) Draw(*ebiten.Image) {}

// Err returns the load error, if any. It is informational only.
func (s *ExplosionSound) Err() error {
	return s.err
}

// Close stops playback if it is still running and releases the decoder.
func (s *ExplosionSound) Close() error {
	if s.ctrl != nil {
		s.player.Lock()
		s.ctrl.Streamer = nil
		s.player.Unlock()
		s.ctrl = nil
	}
	s.done.Store(true)
	if s.stream == nil {
		return nil
	}
	err := s.stream.Close()
	s.stream = nil
	return err
}

package fx_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/plus3/minefx/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(44100)

// fakePlayer collects streamers instead of sending them to a device.
type fakePlayer struct {
	sync.Mutex
	streamers []beep.Streamer
	refuse    bool
}

func (p *fakePlayer) SampleRate() beep.SampleRate { return testRate }

func (p *fakePlayer) Play(s beep.Streamer) bool {
	if p.refuse {
		return false
	}
	p.streamers = append(p.streamers, s)
	return true
}

// drain plays every queued streamer to completion and returns the number of
// samples produced.
func (p *fakePlayer) drain() int {
	buf := make([][2]float64, 512)
	total := 0
	for _, s := range p.streamers {
		for {
			p.Lock()
			n, ok := s.Stream(buf)
			p.Unlock()
			total += n
			if !ok {
				break
			}
		}
	}
	return total
}

func writeWAV(t *testing.T, samples int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boom.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Silence(samples), format))
	return path
}

func TestExplosionSound(t *testing.T) {
	t.Run("finishes when playback stops", func(t *testing.T) {
		player := &fakePlayer{}
		sound := fx.NewExplosionSound(player, writeWAV(t, 2000), 100)

		require.NoError(t, sound.Err())
		require.Len(t, player.streamers, 1)
		assert.False(t, sound.Update(0))
		assert.False(t, sound.Update(0))

		assert.Equal(t, 2000, player.drain())
		assert.True(t, sound.Update(0))
		assert.NoError(t, sound.Close())
	})

	t.Run("missing file plays nothing", func(t *testing.T) {
		player := &fakePlayer{}
		sound := fx.NewExplosionSound(player, filepath.Join(t.TempDir(), "nope.wav"), 100)

		assert.Error(t, sound.Err())
		assert.Empty(t, player.streamers)
		assert.True(t, sound.Update(0))
		assert.NoError(t, sound.Close())
	})

	t.Run("undecodable file plays nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "junk.wav")
		require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

		player := &fakePlayer{}
		sound := fx.NewExplosionSound(player, path, 100)

		assert.Error(t, sound.Err())
		assert.Empty(t, player.streamers)
		assert.True(t, sound.Update(0))
	})

	t.Run("no player", func(t *testing.T) {
		sound := fx.NewExplosionSound(nil, "boom.wav", 100)
		assert.True(t, sound.Update(0))
		assert.NoError(t, sound.Close())
	})

	t.Run("refused by player", func(t *testing.T) {
		player := &fakePlayer{refuse: true}
		sound := fx.NewExplosionSound(player, writeWAV(t, 100), 100)

		assert.NoError(t, sound.Err())
		assert.True(t, sound.Update(0))
		assert.NoError(t, sound.Close())
	})

	t.Run("close stops playback", func(t *testing.T) {
		player := &fakePlayer{}
		sound := fx.NewExplosionSound(player, writeWAV(t, 5000), 50)

		require.NoError(t, sound.Close())
		assert.True(t, sound.Update(0))
		assert.Equal(t, 0, player.drain())
	})

	t.Run("manager releases it once finished", func(t *testing.T) {
		player := &fakePlayer{}
		m := fx.NewManager()
		h := m.Spawn(fx.NewExplosionSound(player, writeWAV(t, 100), 0))

		m.Update(0)
		assert.True(t, m.Active(h))

		player.drain()
		m.Update(0)
		assert.False(t, m.Active(h))
	})
}

// Package audio plays sfx buffers through oto in response to game events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"shooter/internal/sfx"
	"shooter/internal/sim"
)

// maxExplosions caps overlapping explosions; more than that clips.
const maxExplosions = 2

// System owns the oto context and a cache of rendered effects.
type System struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[sfx.Sound][]byte

	explosions atomic.Int32
	variant    atomic.Uint64
}

// New opens the audio device. The context becomes usable once ready closes;
// sounds requested before then are dropped.
func New(volume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, sfx.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &System{
		ctx:    ctx,
		ready:  ready,
		volume: volume,
		cache:  make(map[sfx.Sound][]byte),
	}, nil
}

var eventSounds = []sim.EventType{
	sim.EventExplosion,
	sim.EventSpark,
	sim.EventPlayerShot,
	sim.EventEnemyShot,
	sim.EventLifeLost,
	sim.EventRespawn,
	sim.EventGameOver,
	sim.EventBiomeChanged,
}

// Subscribe plays the matching effect for every sound-bearing event on bus.
func (s *System) Subscribe(bus *sim.EventBus) {
	for _, et := range eventSounds {
		bus.Subscribe(et, func(e sim.Event) {
			if snd, ok := SoundFor(e); ok {
				s.Play(snd)
			}
		})
	}
}

// SoundFor picks the effect for an event.
func SoundFor(e sim.Event) (sfx.Sound, bool) {
	switch e.Type {
	case sim.EventExplosion:
		if sim.Kind(e.Data) == sim.KindPlayer {
			return sfx.BigExplosion, true
		}
		return sfx.Explosion, true
	case sim.EventSpark:
		return sfx.Spark, true
	case sim.EventPlayerShot:
		return sfx.PlayerShot, true
	case sim.EventEnemyShot:
		return sfx.EnemyShot, true
	case sim.EventLifeLost:
		return sfx.LifeLost, true
	case sim.EventRespawn:
		return sfx.Respawn, true
	case sim.EventGameOver:
		return sfx.GameOver, true
	case sim.EventBiomeChanged:
		return sfx.BiomeChange, true
	}
	return 0, false
}

func noisy(snd sfx.Sound) bool {
	return snd == sfx.Explosion || snd == sfx.BigExplosion
}

// samples returns the buffer for snd. Explosions are rendered fresh so
// consecutive blasts sound different; everything else is cached.
func (s *System) samples(snd sfx.Sound) []byte {
	if noisy(snd) {
		return sfx.Generate(snd, s.variant.Add(1)^uint64(time.Now().UnixNano()))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, ok := s.cache[snd]
	if !ok {
		buf = sfx.Generate(snd, uint64(snd))
		s.cache[snd] = buf
	}
	return buf
}

// Play starts snd without blocking the frame.
func (s *System) Play(snd sfx.Sound) {
	select {
	case <-s.ready:
	default:
		return
	}
	if noisy(snd) {
		if s.explosions.Load() >= maxExplosions {
			return
		}
		s.explosions.Add(1)
	}
	go func() {
		if noisy(snd) {
			defer s.explosions.Add(-1)
		}
		player := s.ctx.NewPlayer(NewReader(s.samples(snd)))
		player.SetVolume(s.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// Reader streams a rendered buffer once.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader { return &Reader{data: data} }

func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

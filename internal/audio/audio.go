package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"github.com/Garsondee/maze-chase/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one effect.
type Sound int

const (
	SoundPellet Sound = iota
	SoundPower
	SoundGhostEaten
	SoundLifeLost
	SoundLevelComplete
	SoundGameOver
	soundCount // sentinel
)

func (s Sound) String() string {
	switch s {
	case SoundPellet:
		return "pellet"
	case SoundPower:
		return "power"
	case SoundGhostEaten:
		return "ghost_eaten"
	case SoundLifeLost:
		return "life_lost"
	case SoundLevelComplete:
		return "level_complete"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64 // Hz; 0 is a rest
	dur  time.Duration
}

var melodies = [soundCount][]note{
	SoundPellet:        {{660, 40 * time.Millisecond}},
	SoundPower:         {{440, 60 * time.Millisecond}, {660, 60 * time.Millisecond}, {880, 90 * time.Millisecond}},
	SoundGhostEaten:    {{1320, 50 * time.Millisecond}, {0, 20 * time.Millisecond}, {1760, 80 * time.Millisecond}},
	SoundLifeLost:      {{494, 120 * time.Millisecond}, {440, 120 * time.Millisecond}, {392, 120 * time.Millisecond}, {330, 240 * time.Millisecond}},
	SoundLevelComplete: {{523, 100 * time.Millisecond}, {659, 100 * time.Millisecond}, {784, 100 * time.Millisecond}, {1047, 250 * time.Millisecond}},
	SoundGameOver:      {{392, 200 * time.Millisecond}, {330, 200 * time.Millisecond}, {262, 400 * time.Millisecond}},
}

// Duration is the total length of a sound.
func (s Sound) Duration() time.Duration {
	var d time.Duration
	if s < 0 || s >= soundCount {
		return 0
	}
	for _, n := range melodies[s] {
		d += n.dur
	}
	return d
}

// Build renders s as a finite streamer at the given volume (0..1).
func Build(s Sound, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	if s < 0 || s >= soundCount {
		return nil, fmt.Errorf("audio: unknown sound %d", s)
	}
	parts := make([]beep.Streamer, 0, len(melodies[s]))
	for _, n := range melodies[s] {
		if n.freq == 0 {
			parts = append(parts, beep.Silence(sr.N(n.dur)))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone %.0fHz: %w", s, n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.dur), tone))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// SoundFor maps a session event to the effect it triggers.
func SoundFor(e game.Event) (Sound, bool) {
	switch e.Key {
	case game.KeyPellet:
		return SoundPellet, true
	case game.KeyPowerPellet:
		return SoundPower, true
	case game.KeyGhostEaten:
		return SoundGhostEaten, true
	case game.KeyLifeLost:
		return SoundLifeLost, true
	case game.KeyLevelDone:
		return SoundLevelComplete, true
	case game.KeyGameOver:
		return SoundGameOver, true
	}
	return 0, false
}

// Option configures a Player.
type Option func(*Player)

// WithMute builds a player that never makes a sound.
func WithMute(mute bool) Option {
	return func(p *Player) { p.muted = mute }
}

// WithVolume sets the master volume (0..1).
func WithVolume(v float64) Option {
	return func(p *Player) { p.volume = v }
}

// WithLogger sets the logger used for playback errors.
func WithLogger(l log.FieldLogger) Option {
	return func(p *Player) { p.log = l }
}

// Player plays sound effects for session events. It satisfies
// game.Listener. Until Init succeeds, sounds are queued on the mixer
// without reaching a device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      [soundCount]int
	log         log.FieldLogger
}

// NewPlayer creates an idle player.
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: 0.4,
		log:    log.StandardLogger(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Init opens the audio device. A muted player never touches it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Play queues s on the mixer.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	st, err := Build(s, sampleRate, p.volume)
	if err != nil {
		p.log.WithError(err).Warn("sound effect skipped")
		return
	}
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(st)
	p.played[s]++
}

// Played returns how many times s has been queued.
func (p *Player) Played(s Sound) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s < 0 || s >= soundCount {
		return 0
	}
	return p.played[s]
}

// Pending is the number of streamers still on the mixer.
func (p *Player) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// OnEvent plays the effect for e, if any.
func (p *Player) OnEvent(e game.Event) {
	if s, ok := SoundFor(e); ok {
		p.Play(s)
	}
}

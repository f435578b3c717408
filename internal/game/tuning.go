package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Tuning holds every gameplay constant. Speeds are pixels per frame, so a
// slower frame rate slows the whole game down.
type Tuning struct {
	TileSize         float64       // pixels per cell
	PlayerSpeed      float64       // px/frame
	GhostSpeed       float64       // px/frame
	FrightenedScale  float64       // ghost speed multiplier while the player is powered
	RerollChance     float64       // per-frame chance to re-pick at an intersection
	PowerDuration    time.Duration // how long a power pellet lasts
	PelletScore      int
	PowerPelletScore int
	GhostScore       int
	StartLives       int
	PlayerRadiusPad  float64 // player radius = tile/2 - pad
	GhostRadiusPad   float64 // ghost radius = tile/2 - pad
	ContactOverlap   float64 // contact needs dist < rP + rG - overlap
}

// DefaultTuning returns the stock values.
func DefaultTuning() Tuning {
	return Tuning{
		TileSize:         48,
		PlayerSpeed:      3,
		GhostSpeed:       2.5,
		FrightenedScale:  0.8,
		RerollChance:     0.3,
		PowerDuration:    6000 * time.Millisecond,
		PelletScore:      10,
		PowerPelletScore: 50,
		GhostScore:       200,
		StartLives:       3,
		PlayerRadiusPad:  6,
		GhostRadiusPad:   8,
		ContactOverlap:   6,
	}
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.TileSize <= 0:
		return fmt.Errorf("tuning: tile size %.2f must be positive", t.TileSize)
	case t.PlayerSpeed < 0 || t.PlayerSpeed > t.TileSize:
		return fmt.Errorf("tuning: player speed %.2f outside [0,%.0f]", t.PlayerSpeed, t.TileSize)
	case t.GhostSpeed < 0 || t.GhostSpeed > t.TileSize:
		return fmt.Errorf("tuning: ghost speed %.2f outside [0,%.0f]", t.GhostSpeed, t.TileSize)
	case t.FrightenedScale < 0:
		return fmt.Errorf("tuning: frightened scale %.2f must not be negative", t.FrightenedScale)
	case t.RerollChance < 0 || t.RerollChance > 1:
		return fmt.Errorf("tuning: reroll chance %.2f outside [0,1]", t.RerollChance)
	case t.PowerDuration < 0:
		return fmt.Errorf("tuning: power duration %s must not be negative", t.PowerDuration)
	case t.StartLives <= 0:
		return fmt.Errorf("tuning: start lives %d must be positive", t.StartLives)
	}
	return nil
}

func (t Tuning) playerRadius() float64 { return t.TileSize/2 - t.PlayerRadiusPad }
func (t Tuning) ghostRadius() float64  { return t.TileSize/2 - t.GhostRadiusPad }

// Clock supplies the absolute time used for power expiry.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameClock is a deterministic clock that moves forward one fixed frame
// period per Advance. Headless runs and tests use it.
type FrameClock struct {
	now    time.Time
	Period time.Duration
}

// NewFrameClock starts at the Unix epoch and ticks at fps frames per second.
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{now: time.Unix(0, 0), Period: time.Second / time.Duration(fps)}
}

func (c *FrameClock) Now() time.Time { return c.now }

// Advance moves the clock forward one frame.
func (c *FrameClock) Advance() { c.now = c.now.Add(c.Period) }

// AdvanceBy moves the clock forward by d.
func (c *FrameClock) AdvanceBy(d time.Duration) { c.now = c.now.Add(d) }

// RandSource is the randomness ghosts draw from. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
}

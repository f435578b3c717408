package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTuning_DefaultsValidate(t *testing.T) {
	tun := DefaultTuning()
	assert.NoError(t, tun.Validate())
	assert.Equal(t, 18.0, tun.playerRadius())
	assert.Equal(t, 16.0, tun.ghostRadius())
}

func TestTuning_ValidateRejects(t *testing.T) {
	cases := map[string]func(*Tuning){
		"tile":     func(t *Tuning) { t.TileSize = 0 },
		"player":   func(t *Tuning) { t.PlayerSpeed = 60 },
		"ghost":    func(t *Tuning) { t.GhostSpeed = -1 },
		"fright":   func(t *Tuning) { t.FrightenedScale = -0.5 },
		"reroll":   func(t *Tuning) { t.RerollChance = 1.5 },
		"power":    func(t *Tuning) { t.PowerDuration = -time.Second },
		"no lives": func(t *Tuning) { t.StartLives = 0 },
	}
	for name, mutate := range cases {
		tun := DefaultTuning()
		mutate(&tun)
		assert.Error(t, tun.Validate(), name)
	}
}

func TestFrameClock(t *testing.T) {
	c := NewFrameClock(60)
	start := c.Now()
	assert.Equal(t, time.Unix(0, 0), start)
	for i := 0; i < 60; i++ {
		c.Advance()
	}
	assert.InDelta(t, time.Second, c.Now().Sub(start), float64(time.Millisecond))

	c.AdvanceBy(500 * time.Millisecond)
	assert.True(t, c.Now().After(start.Add(time.Second)))

	assert.Equal(t, time.Second/60, NewFrameClock(0).Period, "non-positive fps falls back to 60")
}

func TestNewRand_SeededSequencesRepeat(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

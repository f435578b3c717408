package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Garsondee/maze-chase/internal/game"
)

// flash is one fading full-playfield tint.
type flash struct {
	tween *gween.Tween
	tint  color.NRGBA
	alpha float32
}

// Flashes tints the playfield briefly when something dramatic happens.
type Flashes struct {
	active []*flash
}

// NewFlashes creates an empty overlay set.
func NewFlashes() *Flashes {
	return &Flashes{}
}

// OnEvent starts a flash for life loss, ghost eaten, power and level end.
func (f *Flashes) OnEvent(e game.Event) {
	switch e.Key {
	case game.KeyLifeLost, game.KeyGameOver:
		f.Start(color.NRGBA{R: 222, G: 33, B: 33}, 0.6, 0.5)
	case game.KeyGhostEaten:
		f.Start(color.NRGBA{R: 255, G: 255, B: 255}, 0.4, 0.25)
	case game.KeyPowerOn:
		f.Start(color.NRGBA{R: 0, G: 255, B: 255}, 0.3, 0.4)
	case game.KeyLevelDone:
		f.Start(color.NRGBA{R: 255, G: 210}, 0.5, 0.8)
	}
}

// Start fades tint from alpha to zero over seconds.
func (f *Flashes) Start(tint color.NRGBA, alpha, seconds float32) {
	f.active = append(f.active, &flash{
		tween: gween.New(alpha, 0, seconds, ease.OutQuad),
		tint:  tint,
		alpha: alpha,
	})
}

// Update advances every flash by dt seconds and drops finished ones.
func (f *Flashes) Update(dt float32) {
	kept := f.active[:0]
	for _, fl := range f.active {
		a, done := fl.tween.Update(dt)
		fl.alpha = a
		if !done {
			kept = append(kept, fl)
		}
	}
	for i := len(kept); i < len(f.active); i++ {
		f.active[i] = nil
	}
	f.active = kept
}

// Active is the number of flashes still fading.
func (f *Flashes) Active() int { return len(f.active) }

// Strongest is the highest alpha among active flashes.
func (f *Flashes) Strongest() float32 {
	var top float32
	for _, fl := range f.active {
		if fl.alpha > top {
			top = fl.alpha
		}
	}
	return top
}

// Draw tints the w×h playfield.
func (f *Flashes) Draw(screen *ebiten.Image, w, h int) {
	for _, fl := range f.active {
		c := fl.tint
		c.A = uint8(fl.alpha * 255)
		vector.FillRect(screen, 0, 0, float32(w), float32(h), c, false)
	}
}

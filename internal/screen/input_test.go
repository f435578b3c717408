package screen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/maze-chase/internal/game"
)

func held(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := map[ebiten.Key]bool{}
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestHeldDirection_Priority(t *testing.T) {
	assert.Equal(t, game.DirNone, heldDirection(held()))
	assert.Equal(t, game.DirLeft, heldDirection(held(ebiten.KeyArrowLeft)))
	assert.Equal(t, game.DirRight, heldDirection(held(ebiten.KeyD)))
	assert.Equal(t, game.DirUp, heldDirection(held(ebiten.KeyArrowRight, ebiten.KeyArrowUp)), "up beats everything")
	assert.Equal(t, game.DirDown, heldDirection(held(ebiten.KeyS, ebiten.KeyArrowLeft)))
}

func TestEdgeKeys_FireOncePerPress(t *testing.T) {
	ek := newEdgeKeys()
	down := held(ebiten.KeyP)
	up := held()

	assert.True(t, ek.justPressed(down, ebiten.KeyP)[ebiten.KeyP])
	assert.False(t, ek.justPressed(down, ebiten.KeyP)[ebiten.KeyP], "held key does not repeat")
	assert.False(t, ek.justPressed(up, ebiten.KeyP)[ebiten.KeyP])
	assert.True(t, ek.justPressed(down, ebiten.KeyP)[ebiten.KeyP])
}

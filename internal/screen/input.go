package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/maze-chase/internal/game"
)

// directionKeys lists the keys for each direction in priority order: when
// several are held the earliest wins.
var directionKeys = []struct {
	dir  game.Direction
	keys []ebiten.Key
}{
	{game.DirUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{game.DirDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{game.DirLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{game.DirRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// heldDirection maps the currently held keys to a direction, or DirNone.
func heldDirection(pressed func(ebiten.Key) bool) game.Direction {
	for _, dk := range directionKeys {
		for _, k := range dk.keys {
			if pressed(k) {
				return dk.dir
			}
		}
	}
	return game.DirNone
}

// edgeKeys tracks key state between frames so a held key fires once.
type edgeKeys struct {
	prev map[ebiten.Key]bool
}

func newEdgeKeys() *edgeKeys {
	return &edgeKeys{prev: make(map[ebiten.Key]bool)}
}

// justPressed reports keys down now that were up last frame. Call once per frame.
func (ek *edgeKeys) justPressed(pressed func(ebiten.Key) bool, keys ...ebiten.Key) map[ebiten.Key]bool {
	out := map[ebiten.Key]bool{}
	current := map[ebiten.Key]bool{}
	for _, k := range keys {
		current[k] = pressed(k)
		if current[k] && !ek.prev[k] {
			out[k] = true
		}
	}
	ek.prev = current
	return out
}

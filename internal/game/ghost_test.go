package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGhost(t *testing.T, m *Maze, spawn Cell, rng RandSource) *Ghost {
	t.Helper()
	return NewGhost("test", GhostRed, m, spawn, DefaultTuning(), rng)
}

func TestGhost_ChooseAvoidsReverse(t *testing.T) {
	m := classicMaze(t)
	for pick := 0; pick < 4; pick++ {
		g := newTestGhost(t, m, Cell{Row: 1, Col: 2}, &scriptedRand{ints: []int{pick}})
		g.Dir = DirRight
		g.ChooseDirection()
		assert.Equal(t, DirRight, g.Dir, "pick %d: corridor (1,2) heading right must not double back", pick)
	}
}

func TestGhost_DeadEndAllowsReverse(t *testing.T) {
	b := MustParseLayout(
		"#####",
		"#G  #",
		"#####",
	)
	m, err := NewMaze(b.Layout, 48)
	require.NoError(t, err)
	g := newTestGhost(t, m, b.Ghosts[0], &scriptedRand{})
	g.Dir = DirLeft // arrived moving west into the dead end

	g.ChooseDirection()
	assert.Equal(t, DirRight, g.Dir, "the reverse is taken when it is the only exit")
}

func TestGhost_EnclosedCellStops(t *testing.T) {
	b := MustParseLayout(
		"###",
		"#G#",
		"###",
	)
	m, err := NewMaze(b.Layout, 48)
	require.NoError(t, err)
	g := newTestGhost(t, m, b.Ghosts[0], &scriptedRand{})
	g.Dir = DirUp
	g.ChooseDirection()
	assert.Equal(t, DirNone, g.Dir)

	g.Update(false)
	assert.Equal(t, DirNone, g.Dir)
	assert.Equal(t, m.CellCenter(1, 1), g.Pos)
}

func TestGhost_UniformPickExcludesReverse(t *testing.T) {
	m := classicMaze(t)
	// (3,1) exits: up, down, right. Heading up, down is the reverse.
	g := newTestGhost(t, m, Cell{Row: 3, Col: 1}, &scriptedRand{ints: []int{0}})
	g.Dir = DirUp
	g.ChooseDirection()
	assert.Equal(t, DirUp, g.Dir)

	g = newTestGhost(t, m, Cell{Row: 3, Col: 1}, &scriptedRand{ints: []int{1}})
	g.Dir = DirUp
	g.ChooseDirection()
	assert.Equal(t, DirRight, g.Dir)
}

func TestGhost_StandingStillPicksAndMoves(t *testing.T) {
	m := classicMaze(t)
	g := newTestGhost(t, m, Cell{Row: 1, Col: 1}, &scriptedRand{ints: []int{1}})
	g.Update(false)
	assert.Equal(t, DirRight, g.Dir)
	assert.Equal(t, Position{X: 74.5, Y: 72}, g.Pos)
	assert.Equal(t, 16.0, g.Radius)
}

func TestGhost_FrightenedMirrorsAndSlows(t *testing.T) {
	m := classicMaze(t)
	g := newTestGhost(t, m, Cell{Row: 1, Col: 1}, &scriptedRand{ints: []int{1}})
	g.Update(true)
	assert.True(t, g.Frightened())
	assert.InDelta(t, 74.0, g.Pos.X, 1e-9, "frightened speed is 0.8x")

	g.Update(false)
	assert.False(t, g.Frightened(), "no timer of its own: follows the flag it is given")
	assert.InDelta(t, 76.5, g.Pos.X, 1e-9)
}

func TestGhost_IntersectionReroll(t *testing.T) {
	m := classicMaze(t)

	rng := &scriptedRand{floats: []float64{0.1}, ints: []int{1}}
	g := newTestGhost(t, m, Cell{Row: 3, Col: 1}, rng)
	g.Dir = DirUp
	g.Update(false)
	assert.Equal(t, DirRight, g.Dir, "roll 0.1 < 0.3 re-picks at a junction")

	rng = &scriptedRand{floats: []float64{0.5}}
	g = newTestGhost(t, m, Cell{Row: 3, Col: 1}, rng)
	g.Dir = DirUp
	g.Update(false)
	assert.Equal(t, DirUp, g.Dir)
	assert.Equal(t, 0, rng.intCalls, "roll 0.5 keeps heading")
	assert.Equal(t, Position{X: 72, Y: 165.5}, g.Pos)
}

func TestGhost_NoRerollInCorridor(t *testing.T) {
	m := classicMaze(t)
	rng := &scriptedRand{floats: []float64{0.0}}
	g := newTestGhost(t, m, Cell{Row: 3, Col: 3}, rng)
	g.Dir = DirLeft
	g.Update(false)
	assert.Equal(t, DirLeft, g.Dir)
	assert.Equal(t, 0, rng.floatCalls, "two-exit cells never roll")
}

func TestGhost_WallAheadReplans(t *testing.T) {
	m := classicMaze(t)
	g := newTestGhost(t, m, Cell{Row: 1, Col: 5}, &scriptedRand{})
	g.Dir = DirRight
	g.Update(false)
	assert.Equal(t, DirDown, g.Dir, "left would be a reversal, so down is the only choice")
	assert.Equal(t, Position{X: 264, Y: 74.5}, g.Pos)
}

func TestGhost_LongRunStaysInCorridorsAndTurnsOnlyAtCentres(t *testing.T) {
	m := classicMaze(t)
	g := newTestGhost(t, m, Cell{Row: 5, Col: 5}, NewRand(99))
	for frame := 0; frame < 5000; frame++ {
		before := g.Dir
		atCentre := m.AtCenter(g.Pos)
		g.Update(frame%700 < 200)
		c := g.Cell(m)
		if m.IsWall(c.Row, c.Col) {
			t.Fatalf("frame %d: ghost in wall cell (%d,%d) at %+v", frame, c.Row, c.Col, g.Pos)
		}
		if g.Dir != before && !atCentre {
			t.Fatalf("frame %d: direction %s -> %s away from a centre at %+v", frame, before, g.Dir, g.Pos)
		}
		if g.Dir == DirNone {
			t.Fatalf("frame %d: ghost froze at %+v", frame, g.Pos)
		}
	}
}

func TestGhost_Reset(t *testing.T) {
	m := classicMaze(t)
	g := newTestGhost(t, m, Cell{Row: 1, Col: 1}, &scriptedRand{ints: []int{1}})
	g.Update(true)
	g.Reset()
	assert.Equal(t, m.CellCenter(1, 1), g.Pos)
	assert.Equal(t, DirNone, g.Dir)
	assert.False(t, g.Frightened())
}

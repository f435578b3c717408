package game

import "math"

// Body is the motion state shared by the player and the ghosts.
type Body struct {
	Pos    Position
	Dir    Direction
	Radius float64
	Spawn  Cell
}

// newBody places a body on the centre of its spawn cell, standing still.
func newBody(m *Maze, spawn Cell, radius float64) Body {
	return Body{
		Pos:    m.CellCenter(spawn.Row, spawn.Col),
		Radius: radius,
		Spawn:  spawn,
	}
}

// respawn puts the body back on its spawn centre with no direction.
func (b *Body) respawn(m *Maze) {
	b.Pos = m.CellCenter(b.Spawn.Row, b.Spawn.Col)
	b.Dir = DirNone
}

// Cell returns the cell the body currently occupies.
func (b *Body) Cell(m *Maze) Cell {
	r, c := m.CellOf(b.Pos)
	return Cell{Row: r, Col: c}
}

// Heading returns the cell one step ahead of the body's current cell.
func (b *Body) Heading(m *Maze) Cell {
	return b.Cell(m).Step(b.Dir)
}

// Step advances b by speed pixels along its direction.
//
// Only the travel axis moves. The cell being left is the source; if the next
// cell along the axis is a wall the body is clamped to the source centre, its
// direction becomes DirNone and Step reports blocked. Otherwise the full step
// is committed, except that a step never runs past the next cell centre: it
// lands on it, so every cell centre is visited exactly for any speed.
func (m *Maze) Step(b *Body, speed float64) (blocked bool) {
	if b.Dir == DirNone || speed <= 0 {
		return false
	}
	dr, dc := b.Dir.Delta()
	if dc != 0 {
		row := m.axisCell(b.Pos.Y)
		x, ok := m.advanceAxis(b.Pos.X, dc, speed, func(col int) bool { return m.IsWall(row, col) })
		b.Pos.X = x
		if !ok {
			b.Dir = DirNone
			return true
		}
		return false
	}
	col := m.axisCell(b.Pos.X)
	y, ok := m.advanceAxis(b.Pos.Y, dr, speed, func(row int) bool { return m.IsWall(row, col) })
	b.Pos.Y = y
	if !ok {
		b.Dir = DirNone
		return true
	}
	return false
}

// advanceAxis moves one coordinate by sign*speed. ok is false when the move
// was refused by a wall, in which case v is the source centre.
func (m *Maze) advanceAxis(v float64, sign int, speed float64, wall func(int) bool) (next float64, ok bool) {
	k := (v - m.half()) / m.TileSize
	var src int
	if sign > 0 {
		src = int(math.Floor(k))
	} else {
		src = int(math.Ceil(k))
	}
	dst := src + sign
	if wall(dst) {
		return m.axisCenter(src), false
	}
	next = v + float64(sign)*speed
	target := m.axisCenter(dst)
	if float64(sign)*(next-target) > 0 {
		next = target
	}
	return next, true
}

package game

import "time"

// GhostView is the read-only state of one ghost.
type GhostView struct {
	Name       string
	Color      int
	Pos        Position
	Dir        Direction
	Radius     float64
	Frightened bool
}

// Snapshot is a copy of everything a renderer or report needs. Taking one
// never mutates the session.
type Snapshot struct {
	Frame     int
	Score     int
	Lives     int
	State     State
	Status    string
	Powered   bool
	PowerLeft time.Duration

	TileSize float64
	Rows     int
	Cols     int
	Walls    [][]bool
	Pellets  Layout

	Player       Position
	PlayerDir    Direction
	PlayerRadius float64
	Ghosts       []GhostView
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:        s.frame,
		Score:        s.score,
		Lives:        s.lives,
		State:        s.state,
		Status:       s.Status(),
		Powered:      s.player.Powered(),
		TileSize:     s.maze.TileSize,
		Rows:         s.maze.Rows,
		Cols:         s.maze.Cols,
		Pellets:      s.pellets.Grid(),
		Player:       s.player.Pos,
		PlayerDir:    s.player.Dir,
		PlayerRadius: s.player.Radius,
	}
	if snap.Powered {
		if left := s.player.PowerExpiry().Sub(s.clock.Now()); left > 0 {
			snap.PowerLeft = left
		}
	}
	snap.Walls = make([][]bool, s.maze.Rows)
	for r := range snap.Walls {
		snap.Walls[r] = make([]bool, s.maze.Cols)
		for c := range snap.Walls[r] {
			snap.Walls[r][c] = s.maze.IsWall(r, c)
		}
	}
	snap.Ghosts = make([]GhostView, len(s.ghosts))
	for i, g := range s.ghosts {
		snap.Ghosts[i] = GhostView{
			Name:       g.Name,
			Color:      g.Color,
			Pos:        g.Pos,
			Dir:        g.Dir,
			Radius:     g.Radius,
			Frightened: g.Frightened(),
		}
	}
	return snap
}

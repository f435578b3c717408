package game

// Ghost is an autonomous adversary. It has no timer of its own: frightened is
// copied from the player's power flag every frame.
type Ghost struct {
	Body
	Name  string
	Color int // palette index for renderers

	maze       *Maze
	rng        RandSource
	speed      float64
	frightScl  float64
	reroll     float64
	frightened bool
}

// NewGhost places a ghost on spawn. rng drives every direction choice.
func NewGhost(name string, color int, m *Maze, spawn Cell, t Tuning, rng RandSource) *Ghost {
	return &Ghost{
		Body:      newBody(m, spawn, t.ghostRadius()),
		Name:      name,
		Color:     color,
		maze:      m,
		rng:       rng,
		speed:     t.GhostSpeed,
		frightScl: t.FrightenedScale,
		reroll:    t.RerollChance,
	}
}

// Frightened reports the flag mirrored on the last Update.
func (g *Ghost) Frightened() bool { return g.frightened }

// ChooseDirection picks uniformly among the open exits of the current cell,
// excluding the way it came unless that is the only exit.
func (g *Ghost) ChooseDirection() {
	cell := g.Cell(g.maze)
	dirs := g.maze.AvailableDirections(cell.Row, cell.Col)
	if len(dirs) == 0 {
		g.Dir = DirNone
		return
	}
	reverse := g.Dir.Reverse()
	pool := make([]Direction, 0, len(dirs))
	for _, d := range dirs {
		if reverse != DirNone && d == reverse {
			continue
		}
		pool = append(pool, d)
	}
	if len(pool) == 0 {
		pool = dirs
	}
	g.Dir = pool[g.rng.Intn(len(pool))]
}

// Update advances the ghost one frame.
func (g *Ghost) Update(playerPowered bool) {
	g.frightened = playerPowered

	if g.maze.AtCenter(g.Pos) {
		ahead := g.Heading(g.maze)
		switch {
		case g.Dir == DirNone || g.maze.IsWall(ahead.Row, ahead.Col):
			g.ChooseDirection()
		default:
			cell := g.Cell(g.maze)
			if g.maze.IsIntersection(cell.Row, cell.Col) && g.rng.Float64() < g.reroll {
				g.ChooseDirection()
			}
		}
	}

	speed := g.speed
	if g.frightened {
		speed *= g.frightScl
	}
	if g.maze.Step(&g.Body, speed) {
		// Never freeze against a wall: replan in the same frame.
		g.ChooseDirection()
	}
}

// Reset sends the ghost back to spawn, standing still and not frightened.
func (g *Ghost) Reset() {
	g.respawn(g.maze)
	g.frightened = false
}

package game

import "time"

// Player is the input-driven agent.
type Player struct {
	Body
	maze  *Maze
	speed float64

	next       Direction // most recent directional intent
	powered    bool
	powerUntil time.Time
}

// NewPlayer places a player on spawn.
func NewPlayer(m *Maze, spawn Cell, t Tuning) *Player {
	return &Player{
		Body:  newBody(m, spawn, t.playerRadius()),
		maze:  m,
		speed: t.PlayerSpeed,
	}
}

// HandleInput records the latest intent. DirNone keeps whatever was recorded
// before, so a released key does not cancel a queued turn.
func (p *Player) HandleInput(d Direction) {
	if d == DirNone {
		return
	}
	p.next = d
}

// Intent returns the recorded next direction.
func (p *Player) Intent() Direction { return p.next }

// Update advances the player one frame.
func (p *Player) Update(now time.Time) {
	if p.powered && now.After(p.powerUntil) {
		p.powered = false
	}

	if p.maze.AtCenter(p.Pos) {
		cell := p.Cell(p.maze)
		if p.next != DirNone {
			if to := cell.Step(p.next); !p.maze.IsWall(to.Row, to.Col) {
				p.Dir = p.next
			}
		}
		if to := cell.Step(p.Dir); p.Dir != DirNone && p.maze.IsWall(to.Row, to.Col) {
			p.Dir = DirNone
		}
	}

	p.maze.Step(&p.Body, p.speed)
}

// Empower arms power mode until now+d. A second pellet re-arms from now.
func (p *Player) Empower(now time.Time, d time.Duration) {
	p.powered = true
	p.powerUntil = now.Add(d)
}

// Powered reports whether power mode is active as of the last Update.
func (p *Player) Powered() bool { return p.powered }

// PowerExpiry returns the absolute expiry of the current or last power mode.
func (p *Player) PowerExpiry() time.Time { return p.powerUntil }

// Reset returns the player to spawn and clears intent and power.
func (p *Player) Reset() {
	p.respawn(p.maze)
	p.next = DirNone
	p.powered = false
	p.powerUntil = time.Time{}
}

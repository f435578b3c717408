package game

import (
	"fmt"
	"sort"
	"strings"
)

// RunReport summarises one headless run.
type RunReport struct {
	Seed   int64
	Frames int
	State  State
	Score  int
	Lives  int

	PelletsEaten     int
	PowerEaten       int
	GhostsEaten      int
	LivesLost        int
	FirstPowerFrame  int // -1 if never
	FirstDeathFrame  int // -1 if never
	PelletsRemaining int
}

// Report builds a RunReport from the sim's event log and session.
func (hs *HeadlessSim) Report() RunReport {
	s := hs.Session
	return RunReport{
		Seed:             hs.Seed,
		Frames:           s.Frame(),
		State:            s.State(),
		Score:            s.Score(),
		Lives:            s.Lives(),
		PelletsEaten:     hs.Log.Count(CatPickup, KeyPellet),
		PowerEaten:       hs.Log.Count(CatPickup, KeyPowerPellet),
		GhostsEaten:      hs.Log.Count(CatContact, KeyGhostEaten),
		LivesLost:        hs.Log.Count(CatContact, KeyLifeLost),
		FirstPowerFrame:  firstFrame(hs.Log, CatPickup, KeyPowerPellet),
		FirstDeathFrame:  firstFrame(hs.Log, CatContact, KeyLifeLost),
		PelletsRemaining: s.Pellets().Remaining(),
	}
}

func firstFrame(el *EventLog, category, key string) int {
	for _, e := range el.Entries() {
		if e.Category == category && e.Key == key {
			return e.Frame
		}
	}
	return -1
}

// Format renders the report as a short block.
func (r RunReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "seed=%d frames=%d outcome=%s score=%d lives=%d\n",
		r.Seed, r.Frames, r.State, r.Score, r.Lives)
	fmt.Fprintf(&b, "eaten: pellets=%d power=%d ghosts=%d  lives_lost=%d  remaining=%d\n",
		r.PelletsEaten, r.PowerEaten, r.GhostsEaten, r.LivesLost, r.PelletsRemaining)
	fmt.Fprintf(&b, "markers: first_power=%d first_death=%d\n", r.FirstPowerFrame, r.FirstDeathFrame)
	return b.String()
}

// FormatAggregate summarises many runs: outcome counts plus score and
// duration statistics.
func FormatAggregate(reports []RunReport) string {
	var b strings.Builder
	if len(reports) == 0 {
		b.WriteString("no runs\n")
		return b.String()
	}
	outcomes := map[State]int{}
	scores := make([]int, 0, len(reports))
	frames := make([]int, 0, len(reports))
	ghosts, deaths := 0, 0
	for _, r := range reports {
		outcomes[r.State]++
		scores = append(scores, r.Score)
		frames = append(frames, r.Frames)
		ghosts += r.GhostsEaten
		deaths += r.LivesLost
	}
	sort.Ints(scores)
	sort.Ints(frames)
	n := len(reports)
	fmt.Fprintf(&b, "=== Aggregate (%d runs) ===\n", n)
	fmt.Fprintf(&b, "outcomes: level_complete=%d game_over=%d unfinished=%d\n",
		outcomes[StateLevelComplete], outcomes[StateGameOver], outcomes[StatePlaying])
	fmt.Fprintf(&b, "score: min=%d median=%d max=%d\n", scores[0], scores[n/2], scores[n-1])
	fmt.Fprintf(&b, "frames: min=%d median=%d max=%d\n", frames[0], frames[n/2], frames[n-1])
	fmt.Fprintf(&b, "per_run_avg: ghosts_eaten=%.2f lives_lost=%.2f\n",
		float64(ghosts)/float64(n), float64(deaths)/float64(n))
	return b.String()
}

// Summary is a one-block description of the live session, suitable for
// pasting into a bug report.
func (s *Session) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Maze Chase session %s ---\n", s.id)
	fmt.Fprintf(&b, "frame=%d state=%s score=%d lives=%d pellets_left=%d\n",
		s.frame, s.state, s.score, s.lives, s.pellets.Remaining())
	pc := s.player.Cell(s.maze)
	fmt.Fprintf(&b, "player cell=(%d,%d) pos=(%.1f,%.1f) dir=%s powered=%v\n",
		pc.Row, pc.Col, s.player.Pos.X, s.player.Pos.Y, s.player.Dir, s.player.Powered())
	for _, g := range s.ghosts {
		gc := g.Cell(s.maze)
		fmt.Fprintf(&b, "ghost %-7s cell=(%d,%d) pos=(%.1f,%.1f) dir=%s frightened=%v\n",
			g.Name, gc.Row, gc.Col, g.Pos.X, g.Pos.Y, g.Dir, g.Frightened())
	}
	board := s.pellets.Grid()
	for r := range board {
		for c := range board[r] {
			if s.maze.IsWall(r, c) {
				board[r][c] = TileWall
			}
		}
	}
	b.WriteString(board.String())
	b.WriteByte('\n')
	return b.String()
}

package game

import (
	"fmt"
	"testing"
)

// --- Invariant helpers ---

// pathTracker accumulates per-agent travel so a window's movement can be
// checked even when a respawn teleports the agent.
type pathTracker struct {
	last   []Position
	travel [][]float64 // travel[agent][frame] = cumulative distance
}

func newPathTracker(s *Session) *pathTracker {
	pt := &pathTracker{}
	pt.last = append(pt.last, s.Player().Pos)
	for _, g := range s.Ghosts() {
		pt.last = append(pt.last, g.Pos)
	}
	pt.travel = make([][]float64, len(pt.last))
	for i := range pt.travel {
		pt.travel[i] = []float64{0}
	}
	return pt
}

func (pt *pathTracker) sample(s *Session, respawned bool) {
	now := []Position{s.Player().Pos}
	for _, g := range s.Ghosts() {
		now = append(now, g.Pos)
	}
	for i, p := range now {
		d := p.Dist(pt.last[i])
		if respawned {
			d = 0
		}
		prev := pt.travel[i][len(pt.travel[i])-1]
		pt.travel[i] = append(pt.travel[i], prev+d)
		pt.last[i] = p
	}
}

// checkNoStuck verifies that every agent travels at least minDist pixels over
// any window of windowFrames consecutive frames.
func checkNoStuck(t *testing.T, pt *pathTracker, windowFrames int, minDist float64) {
	t.Helper()
	for agent, travel := range pt.travel {
		for i := 0; i+windowFrames < len(travel); i++ {
			if moved := travel[i+windowFrames] - travel[i]; moved < minDist {
				t.Errorf("agent %d appears stuck: moved only %.2fpx over frames %d-%d",
					agent, moved, i, i+windowFrames)
				break // one report per agent
			}
		}
	}
}

// checkBounded verifies score never drops and lives stay within range.
func checkBounded(t *testing.T, s *Session, lastScore int) {
	t.Helper()
	if s.Score() < lastScore {
		t.Fatalf("frame %d: score dropped %d -> %d", s.Frame(), lastScore, s.Score())
	}
	if s.Lives() < 0 || s.Lives() > s.Tuning().StartLives {
		t.Fatalf("frame %d: lives %d outside [0,%d]", s.Frame(), s.Lives(), s.Tuning().StartLives)
	}
	if s.Lives() == 0 && s.State() != StateGameOver {
		t.Fatalf("frame %d: no lives left but state is %s", s.Frame(), s.State())
	}
}

func TestInvariant_AgentsKeepMoving(t *testing.T) {
	for seed := int64(20); seed < 24; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			hs, err := NewHeadlessSim(seed)
			if err != nil {
				t.Fatalf("NewHeadlessSim: %v", err)
			}
			pt := newPathTracker(hs.Session)
			for i := 0; i < 3000 && !hs.Session.State().Terminal(); i++ {
				contacts := hs.Log.Count(CatContact, "")
				hs.Step()
				pt.sample(hs.Session, hs.Log.Count(CatContact, "") != contacts)
			}
			checkNoStuck(t, pt, 120, hs.Session.Tuning().TileSize)
			if t.Failed() {
				dumpEvents(t, hs.Log)
			}
		})
	}
}

func TestInvariant_ScoreAndLivesBounded(t *testing.T) {
	for seed := int64(30); seed < 36; seed++ {
		hs, err := NewHeadlessSim(seed)
		if err != nil {
			t.Fatalf("NewHeadlessSim: %v", err)
		}
		last := 0
		for i := 0; i < 5000 && !hs.Session.State().Terminal(); i++ {
			hs.Step()
			checkBounded(t, hs.Session, last)
			last = hs.Session.Score()
		}
	}
}

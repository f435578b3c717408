package game

import (
	"io"

	"github.com/sirupsen/logrus"
)

// HeadlessSim drives a Session without a window: a deterministic frame
// clock, an autopilot for input and an EventLog recording everything.
// Tests and cmd/headless-report use it.
type HeadlessSim struct {
	Seed    int64
	Session *Session
	Log     *EventLog
	Clock   *FrameClock
	Pilot   *AutoPilot

	// Script, when set, replaces the autopilot. It is called once per frame.
	Script func(frame int, s *Session) Input
}

// quietLogger discards session logging unless a caller passes its own.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewHeadlessSim builds a seeded session running at 60 frames per second.
// Later options override earlier ones, so callers can replace the logger,
// board or random source.
func NewHeadlessSim(seed int64, opts ...Option) (*HeadlessSim, error) {
	hs := &HeadlessSim{
		Seed:  seed,
		Log:   NewEventLog(),
		Clock: NewFrameClock(60),
		Pilot: NewAutoPilot(NewRand(seed + 7777)),
	}
	base := []Option{
		WithSeed(seed),
		WithClock(hs.Clock),
		WithLogger(quietLogger()),
		WithListener(hs.Log),
	}
	s, err := NewSession(append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	hs.Session = s
	return hs, nil
}

// Step runs exactly one frame, even in a terminal state (where it is a no-op
// for the simulation but still advances the clock).
func (hs *HeadlessSim) Step() {
	var in Input
	if hs.Script != nil {
		in = hs.Script(hs.Session.Frame()+1, hs.Session)
	} else {
		in = Input{Dir: hs.Pilot.Intent(hs.Session)}
	}
	hs.Clock.Advance()
	hs.Session.Update(in)
}

// RunFrames steps up to n frames and stops early once the session reaches a
// terminal state. It returns the number of frames stepped.
func (hs *HeadlessSim) RunFrames(n int) int {
	return hs.RunUntil(func(*HeadlessSim) bool { return false }, n)
}

// RunUntil steps until predicate is true, the session ends, or maxFrames
// have passed. It returns the number of frames stepped.
func (hs *HeadlessSim) RunUntil(predicate func(*HeadlessSim) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if hs.Session.State().Terminal() || predicate(hs) {
			return i
		}
		hs.Step()
	}
	return maxFrames
}

// AutoPilot produces player intents for unattended play: at every cell
// centre it heads for an adjacent pellet when there is one, otherwise it
// wanders without doubling back unless cornered.
type AutoPilot struct {
	rng RandSource
}

// NewAutoPilot returns a pilot drawing from rng.
func NewAutoPilot(rng RandSource) *AutoPilot {
	return &AutoPilot{rng: rng}
}

// Intent returns the direction to hold this frame. Between cell centres it
// returns DirNone, which keeps the previously recorded intent.
func (a *AutoPilot) Intent(s *Session) Direction {
	m := s.Maze()
	p := s.Player()
	if !m.AtCenter(p.Pos) {
		return DirNone
	}
	cell := p.Cell(m)
	dirs := m.AvailableDirections(cell.Row, cell.Col)
	if len(dirs) == 0 {
		return DirNone
	}
	var food []Direction
	for _, d := range dirs {
		to := cell.Step(d)
		if s.Pellets().At(to.Row, to.Col) != TileEmpty {
			food = append(food, d)
		}
	}
	if len(food) > 0 {
		return food[a.rng.Intn(len(food))]
	}
	reverse := p.Dir.Reverse()
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
	return pool[a.rng.Intn(len(pool))]
}

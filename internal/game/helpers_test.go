package game

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

// scriptedRand replays fixed values. When a script runs dry Intn returns 0
// and Float64 returns 0.99 (never below the reroll chance).
type scriptedRand struct {
	ints       []int
	floats     []float64
	intCalls   int
	floatCalls int
}

func (r *scriptedRand) Intn(n int) int {
	r.intCalls++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func silentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestSession builds a session on a frame clock with a silent logger.
func newTestSession(t *testing.T, opts ...Option) (*Session, *FrameClock, *EventLog) {
	t.Helper()
	clock := NewFrameClock(60)
	log := NewEventLog()
	base := []Option{WithClock(clock), WithLogger(silentLogger()), WithListener(log), WithSeed(1)}
	s, err := NewSession(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, clock, log
}

// dumpEvents prints the event log so it shows up in `go test -v` output.
func dumpEvents(t *testing.T, el *EventLog) {
	t.Helper()
	if len(el.Entries()) == 0 {
		t.Log("(no events)")
		return
	}
	for _, e := range el.Entries() {
		t.Log(e.String())
	}
}

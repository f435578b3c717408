package screen

import (
	"errors"
	"io"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/maze-chase/internal/game"
)

func quiet() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestGame(t *testing.T, opts ...Option) (*Game, *game.Session, *game.FrameClock) {
	t.Helper()
	clock := game.NewFrameClock(60)
	s, err := game.NewSession(game.WithSeed(1), game.WithClock(clock), game.WithLogger(quiet()))
	require.NoError(t, err)
	return New(s, append([]Option{WithLogger(quiet())}, opts...)...), s, clock
}

func TestGame_Size(t *testing.T) {
	g, _, _ := newTestGame(t)
	w, h := g.Size()
	assert.Equal(t, 7*48+tickerWidth, w)
	assert.Equal(t, 7*48+hudHeight, h)
	lw, lh := g.Layout(1920, 1080)
	assert.Equal(t, w, lw)
	assert.Equal(t, h, lh)
}

func TestGame_StepFeedsTickerAndFlashes(t *testing.T) {
	g, s, _ := newTestGame(t)
	s.Player().Pos = s.Maze().CellCenter(1, 3)
	s.ResolveCollectible()

	assert.Len(t, g.ticker.Recent(), 2, "power pickup and power on")
	assert.Equal(t, 1, g.flashes.Active())

	g.Step(game.Input{Dir: game.DirLeft})
	assert.Equal(t, 1, s.Frame())
}

func TestGame_CopySummary(t *testing.T) {
	var copied string
	g, s, _ := newTestGame(t, WithClipboard(func(v string) error {
		copied = v
		return nil
	}))
	g.CopySummary()
	assert.Contains(t, copied, s.ID())
	assert.Equal(t, "summary copied", g.ticker.Recent()[0].Message)

	failing, _, _ := newTestGame(t, WithClipboard(func(string) error { return errors.New("no clipboard") }))
	failing.CopySummary()
	assert.Empty(t, failing.ticker.Recent())
}

func TestGame_TogglePause(t *testing.T) {
	g, _, _ := newTestGame(t)
	assert.False(t, g.Paused())
	g.TogglePause()
	assert.True(t, g.Paused())
	g.TogglePause()
	assert.False(t, g.Paused())
}

func TestHUDFor(t *testing.T) {
	_, s, clock := newTestGame(t)
	h := hudFor(s.Snapshot(), false)
	assert.Equal(t, "Score: 0", h.score)
	assert.Equal(t, "Lives: 3", h.lives)
	assert.Equal(t, "", h.status)

	assert.Equal(t, "PAUSED  P=resume", hudFor(s.Snapshot(), true).status)

	s.Player().Empower(clock.Now(), 6*time.Second)
	h = hudFor(s.Snapshot(), false)
	assert.Equal(t, "POWER! 6.0s", h.status)
	assert.Equal(t, colOrange, h.statusColor)
	assert.Equal(t, colOrange, playerColor(s.Snapshot()))
}

func TestGhostColor(t *testing.T) {
	assert.Equal(t, ghostPalette[game.GhostPink], ghostColor(game.GhostView{Color: game.GhostPink}))
	assert.Equal(t, colCyan, ghostColor(game.GhostView{Color: game.GhostPink, Frightened: true}))
	assert.Equal(t, ghostPalette[game.GhostRed], ghostColor(game.GhostView{Color: 4}), "indices wrap")
}

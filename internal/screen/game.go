package screen

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/maze-chase/internal/game"
)

// Game adapts a game.Session to ebiten: it polls the keyboard once per
// frame, advances the session and draws the snapshot.
type Game struct {
	session *game.Session
	ticker  *Ticker
	flashes *Flashes
	keys    *edgeKeys
	face    text.Face
	log     log.FieldLogger

	copyText func(string) error
	paused   bool

	fieldW int // playfield width; the ticker panel sits to its right
	fieldH int // playfield height; the HUD sits below it
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the front end's logger.
func WithLogger(l log.FieldLogger) Option {
	return func(g *Game) { g.log = l }
}

// WithClipboard replaces the function used to copy the session summary.
func WithClipboard(fn func(string) error) Option {
	return func(g *Game) { g.copyText = fn }
}

// New wraps s and subscribes the ticker and flash overlays to its events.
func New(s *game.Session, opts ...Option) *Game {
	snap := s.Snapshot()
	g := &Game{
		session:  s,
		ticker:   NewTicker(),
		flashes:  NewFlashes(),
		keys:     newEdgeKeys(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		log:      log.StandardLogger(),
		copyText: clipboard.WriteAll,
		fieldW:   int(float64(snap.Cols) * snap.TileSize),
		fieldH:   int(float64(snap.Rows) * snap.TileSize),
	}
	for _, o := range opts {
		o(g)
	}
	s.Subscribe(g.ticker)
	s.Subscribe(g.flashes)
	return g
}

// Size is the logical screen size: playfield plus HUD and ticker panel.
func (g *Game) Size() (int, int) {
	return g.fieldW + tickerWidth, g.fieldH + hudHeight
}

// Update polls input and runs one simulation frame unless paused.
func (g *Game) Update() error {
	edges := g.keys.justPressed(ebiten.IsKeyPressed, ebiten.KeyEscape, ebiten.KeyP, ebiten.KeyC)
	if edges[ebiten.KeyEscape] {
		return ebiten.Termination
	}
	if edges[ebiten.KeyP] {
		g.TogglePause()
	}
	if edges[ebiten.KeyC] {
		g.CopySummary()
	}

	g.flashes.Update(1 / float32(ebiten.TPS()))
	if g.paused {
		return nil
	}
	restart := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
	g.Step(game.Input{Dir: heldDirection(ebiten.IsKeyPressed), Restart: restart})
	return nil
}

// Step hands one frame of input to the session.
func (g *Game) Step(in game.Input) {
	g.session.Update(in)
}

// TogglePause freezes or resumes the simulation between frames.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	g.log.WithField("paused", g.paused).Debug("pause toggled")
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool { return g.paused }

// CopySummary puts the session summary on the system clipboard.
func (g *Game) CopySummary() {
	if err := g.copyText(g.session.Summary()); err != nil {
		g.log.WithError(err).Warn("copy summary to clipboard failed")
		return
	}
	g.ticker.Add(g.session.Frame(), "--", "ui", "summary copied")
}

// Draw renders maze, agents, overlays, HUD and the event ticker.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBlack)
	snap := g.session.Snapshot()

	drawMaze(screen, snap)
	for _, gv := range snap.Ghosts {
		drawGhost(screen, gv)
	}
	drawPlayer(screen, snap)
	g.flashes.Draw(screen, g.fieldW, g.fieldH)
	drawHUD(screen, g.face, snap, g.paused, g.fieldW)

	_, h := g.Size()
	g.ticker.Draw(screen, g.fieldW, h)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.Size()
}

package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the session's top-level mode.
type State uint8

const (
	StatePlaying       State = iota
	StateLevelComplete       // terminal until restart
	StateGameOver            // terminal until restart
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level_complete"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state only leaves via restart.
func (s State) Terminal() bool {
	return s == StateLevelComplete || s == StateGameOver
}

// Input is what the front end hands the session once per frame.
type Input struct {
	Dir     Direction // currently held direction, or DirNone
	Restart bool      // edge-triggered confirm/restart
}

// GhostSpec describes one ghost to spawn.
type GhostSpec struct {
	Name  string
	Spawn Cell
	Color int
}

// Ghost palette indices understood by renderers.
const (
	GhostRed = iota
	GhostPink
	GhostCyan
	GhostOrange
)

var defaultGhosts = []GhostSpec{
	{Name: "blinky", Spawn: Cell{Row: 1, Col: 1}, Color: GhostRed},
	{Name: "pinky", Spawn: Cell{Row: 5, Col: 5}, Color: GhostPink},
}

var defaultPlayerSpawn = Cell{Row: 3, Col: 3}

// Session owns the whole simulation: board, pellets, agents, score and
// lives. It is single-threaded; call Update once per frame.
type Session struct {
	id     string
	tuning Tuning
	layout Layout
	spawn  Cell
	specs  []GhostSpec

	maze    *Maze
	pellets *Collectibles
	player  *Player
	ghosts  []*Ghost

	clock     Clock
	rng       RandSource
	log       *logrus.Entry
	logger    logrus.FieldLogger
	listeners []Listener

	frame int
	score int
	lives int
	state State
}

// Option configures a Session under construction.
type Option func(*Session)

// WithLayout replaces the board and spawn points.
func WithLayout(l Layout, player Cell, ghosts ...GhostSpec) Option {
	return func(s *Session) {
		s.layout = l.Clone()
		s.spawn = player
		s.specs = append([]GhostSpec(nil), ghosts...)
	}
}

// WithBoard uses a parsed fixture. Ghost markers become ghosts named g0, g1, ...
func WithBoard(b Board) Option {
	return func(s *Session) {
		s.layout = b.Layout.Clone()
		if b.HasPlayer {
			s.spawn = b.Player
		}
		s.specs = s.specs[:0]
		for i, c := range b.Ghosts {
			s.specs = append(s.specs, GhostSpec{Name: fmt.Sprintf("g%d", i), Spawn: c, Color: i % 4})
		}
	}
}

// WithTuning overrides gameplay constants.
func WithTuning(t Tuning) Option {
	return func(s *Session) { s.tuning = t }
}

// WithClock sets the time source used for power expiry.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithRand sets the random source shared by all ghosts.
func WithRand(r RandSource) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = NewRand(seed) }
}

// WithLogger sets the structured logger. The session adds its own fields.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.logger = l }
}

// WithListener subscribes l to every event.
func WithListener(l Listener) Option {
	return func(s *Session) { s.listeners = append(s.listeners, l) }
}

// NewSession builds a session from the classic board unless options say otherwise.
func NewSession(opts ...Option) (*Session, error) {
	s := &Session{
		id:     uuid.NewString(),
		tuning: DefaultTuning(),
		layout: DefaultLayout(),
		spawn:  defaultPlayerSpawn,
		specs:  append([]GhostSpec(nil), defaultGhosts...),
		clock:  SystemClock{},
	}
	for _, o := range opts {
		o(s)
	}
	if err := s.tuning.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if s.rng == nil {
		s.rng = NewRand(time.Now().UnixNano())
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	s.log = s.logger.WithField("session", s.id)

	m, err := NewMaze(s.layout, s.tuning.TileSize)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if m.IsWall(s.spawn.Row, s.spawn.Col) {
		return nil, fmt.Errorf("new session: player spawn (%d,%d) is a wall", s.spawn.Row, s.spawn.Col)
	}
	s.maze = m
	s.pellets = NewCollectibles(s.layout)
	s.player = NewPlayer(m, s.spawn, s.tuning)
	for _, spec := range s.specs {
		if m.IsWall(spec.Spawn.Row, spec.Spawn.Col) {
			return nil, fmt.Errorf("new session: ghost %s spawn (%d,%d) is a wall", spec.Name, spec.Spawn.Row, spec.Spawn.Col)
		}
		s.ghosts = append(s.ghosts, NewGhost(spec.Name, spec.Color, m, spec.Spawn, s.tuning, s.rng))
	}
	s.lives = s.tuning.StartLives
	s.log.WithFields(logrus.Fields{
		"rows":   m.Rows,
		"cols":   m.Cols,
		"ghosts": len(s.ghosts),
		"pellet": s.pellets.Remaining(),
	}).Info("session created")
	return s, nil
}

// Update runs one frame: restart edge, player, ghosts, then collisions.
// Nothing moves while the session is in a terminal state.
func (s *Session) Update(in Input) {
	if in.Restart && s.state.Terminal() {
		s.Restart()
	}
	if s.state.Terminal() {
		return
	}
	s.frame++

	wasPowered := s.player.Powered()
	s.player.HandleInput(in.Dir)
	s.player.Update(s.clock.Now())
	if wasPowered && !s.player.Powered() {
		s.emit(Event{Actor: "player", Category: CatPower, Key: KeyPowerOff, Value: "expired"})
	}

	powered := s.player.Powered()
	for _, g := range s.ghosts {
		g.Update(powered)
	}

	s.ResolveCollectible()
	s.ResolveAgentContact()
	s.CheckLevelComplete()
}

// ResolveCollectible eats whatever sits in the player's cell.
func (s *Session) ResolveCollectible() {
	if s.state.Terminal() {
		return
	}
	cell := s.player.Cell(s.maze)
	switch s.pellets.Take(cell.Row, cell.Col) {
	case TilePellet:
		s.score += s.tuning.PelletScore
		s.log.WithFields(logrus.Fields{"row": cell.Row, "col": cell.Col, "score": s.score}).Debug("pellet eaten")
		s.emit(Event{Actor: "player", Category: CatPickup, Key: KeyPellet,
			Value: fmt.Sprintf("(%d,%d) +%d", cell.Row, cell.Col, s.tuning.PelletScore), NumVal: float64(s.tuning.PelletScore)})
	case TilePowerPellet:
		now := s.clock.Now()
		s.score += s.tuning.PowerPelletScore
		s.player.Empower(now, s.tuning.PowerDuration)
		s.log.WithFields(logrus.Fields{"row": cell.Row, "col": cell.Col, "score": s.score, "until": s.player.PowerExpiry()}).Debug("power pellet eaten")
		s.emit(Event{Actor: "player", Category: CatPickup, Key: KeyPowerPellet,
			Value: fmt.Sprintf("(%d,%d) +%d", cell.Row, cell.Col, s.tuning.PowerPelletScore), NumVal: float64(s.tuning.PowerPelletScore)})
		s.emit(Event{Actor: "player", Category: CatPower, Key: KeyPowerOn,
			Value: s.tuning.PowerDuration.String(), NumVal: s.tuning.PowerDuration.Seconds()})
	}
}

// ResolveAgentContact checks the player against every ghost. At most one
// life is lost per frame.
func (s *Session) ResolveAgentContact() {
	if s.state.Terminal() {
		return
	}
	for _, g := range s.ghosts {
		limit := s.player.Radius + g.Radius - s.tuning.ContactOverlap
		if s.player.Pos.Dist(g.Pos) >= limit {
			continue
		}
		if s.player.Powered() {
			g.Reset()
			s.score += s.tuning.GhostScore
			s.log.WithFields(logrus.Fields{"ghost": g.Name, "score": s.score}).Info("ghost eaten")
			s.emit(Event{Actor: g.Name, Category: CatContact, Key: KeyGhostEaten,
				Value: fmt.Sprintf("+%d", s.tuning.GhostScore), NumVal: float64(s.tuning.GhostScore)})
			continue
		}

		s.lives--
		s.resetAgents()
		s.log.WithFields(logrus.Fields{"ghost": g.Name, "lives": s.lives}).Info("life lost")
		s.emit(Event{Actor: g.Name, Category: CatContact, Key: KeyLifeLost,
			Value: fmt.Sprintf("lives=%d", s.lives), NumVal: float64(s.lives)})
		if s.lives <= 0 {
			s.state = StateGameOver
			s.log.WithField("score", s.score).Info("game over")
			s.emit(Event{Actor: "--", Category: CatState, Key: KeyGameOver,
				Value: fmt.Sprintf("score=%d", s.score), NumVal: float64(s.score)})
		}
		return
	}
}

// CheckLevelComplete ends the level once no pellet of either kind remains.
func (s *Session) CheckLevelComplete() {
	if s.state.Terminal() {
		return
	}
	if s.pellets.Remaining() > 0 {
		return
	}
	s.state = StateLevelComplete
	s.log.WithFields(logrus.Fields{"score": s.score, "frame": s.frame}).Info("level complete")
	s.emit(Event{Actor: "--", Category: CatState, Key: KeyLevelDone,
		Value: fmt.Sprintf("score=%d", s.score), NumVal: float64(s.score)})
}

// Restart resets score, lives, pellets and every agent, and resumes play.
func (s *Session) Restart() {
	s.pellets.Refill()
	s.score = 0
	s.lives = s.tuning.StartLives
	s.state = StatePlaying
	s.resetAgents()
	s.log.Info("session restarted")
	s.emit(Event{Actor: "--", Category: CatState, Key: KeyRestart, Value: "playing"})
}

func (s *Session) resetAgents() {
	s.player.Reset()
	for _, g := range s.ghosts {
		g.Reset()
	}
}

func (s *Session) emit(e Event) {
	e.Frame = s.frame
	for _, l := range s.listeners {
		l.OnEvent(e)
	}
}

// Subscribe adds a listener after construction.
func (s *Session) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Status is the single HUD status line. Power is only shown during play.
func (s *Session) Status() string {
	switch s.state {
	case StateLevelComplete:
		return "LEVEL COMPLETE! Press Enter to restart."
	case StateGameOver:
		return "GAME OVER! Press Enter to play again."
	}
	if s.player.Powered() {
		return "POWER!"
	}
	return ""
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Frame() int             { return s.frame }
func (s *Session) Score() int             { return s.score }
func (s *Session) Lives() int             { return s.lives }
func (s *Session) State() State           { return s.state }
func (s *Session) Maze() *Maze            { return s.maze }
func (s *Session) Pellets() *Collectibles { return s.pellets }
func (s *Session) Player() *Player        { return s.player }
func (s *Session) Ghosts() []*Ghost       { return s.ghosts }
func (s *Session) Tuning() Tuning         { return s.tuning }
func (s *Session) Clock() Clock           { return s.clock }

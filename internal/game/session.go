package game

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameState int

const (
	StateAuth GameState = iota
	StateStart
	StateCustomize
	StatePlaying
	StatePaused
	StateOver
)

func (s GameState) String() string {
	switch s {
	case StateAuth:
		return "auth"
	case StateStart:
		return "start"
	case StateCustomize:
		return "customize"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	}
	return "unknown"
}

// InputSnapshot is the normalized per-frame input produced by the host.
// Dirs and Pointer are two independent direction sources; the game ORs them
// together. The command fields are edge-triggered (true for one frame).
type InputSnapshot struct {
	Dirs    DirInput // keyboard
	Pointer DirInput // alternative pointer/touch source

	ToggleGravity bool
	Pause         bool
	Start         bool
	Customize     bool
	Back          bool
}

// Game is one explicit session owner: the state machine plus every entity it
// drives. No ambient globals; everything the simulation touches hangs off
// this struct, so it is constructible headless.
type Game struct {
	State GameState
	prior GameState // remembered when entering customize

	Score      int
	HighScore  int
	PlayerName string
	Color      SnakeColor
	Theme      ThemeConfig

	ArenaW, ArenaH float64

	Snake     *Snake
	Food      *Food
	Particles *ParticleSystem
	Gravity   *GravityField

	sessionID      string
	sessionStartMs int64
	lastRotationMs int64

	store ProfileStore
	clock Clock
	bus   *EventBus
	log   *zap.Logger
}

// NewGame loads the persisted profile and starts in Auth when no identity
// exists, Start otherwise. Malformed profile values fall back to defaults.
func NewGame(store ProfileStore, clock Clock, arenaW, arenaH float64) *Game {
	g := &Game{
		ArenaW: arenaW,
		ArenaH: arenaH,
		store:  store,
		clock:  clock,
		bus:    NewEventBus(),
		log:    zap.NewNop(),
	}
	name, _ := store.Get(ProfileKeyName)
	g.PlayerName = name
	g.HighScore = storedHighScore(store)
	colTok, _ := store.Get(ProfileKeyColor)
	g.Color = ColorByToken(colTok)
	themeTok, _ := store.Get(ProfileKeyTheme)
	g.Theme = ThemeByToken(themeTok)

	if g.PlayerName == "" {
		g.State = StateAuth
	} else {
		g.State = StateStart
	}
	return g
}

// SetLogger replaces the nop logger.
func (g *Game) SetLogger(log *zap.Logger) {
	g.log = log
}

// Bus exposes the event bus for presentation subscribers.
func (g *Game) Bus() *EventBus {
	return g.bus
}

// SetPlayerName persists the identity and, from Auth, moves to Start.
func (g *Game) SetPlayerName(name string) {
	if name == "" {
		return
	}
	g.PlayerName = name
	g.store.Set(ProfileKeyName, name)
	if g.State == StateAuth {
		g.transition(StateStart)
	}
}

// CycleColor advances to the next snake colour and persists the choice.
// Only acts on the customize screen.
func (g *Game) CycleColor() {
	if g.State != StateCustomize {
		return
	}
	for i, c := range SnakeColors {
		if c.Token == g.Color.Token {
			g.Color = SnakeColors[(i+1)%len(SnakeColors)]
			break
		}
	}
	g.store.Set(ProfileKeyColor, g.Color.Token)
}

// CycleTheme advances to the next visual theme and persists the choice.
// Only acts on the customize screen.
func (g *Game) CycleTheme() {
	if g.State != StateCustomize {
		return
	}
	for i, t := range Themes {
		if t.Token == g.Theme.Token {
			g.Theme = Themes[(i+1)%len(Themes)]
			break
		}
	}
	g.store.Set(ProfileKeyTheme, g.Theme.Token)
}

// Resize updates the arena dimensions. Food whose padding invariant broke
// under the new bounds is relocated.
func (g *Game) Resize(w, h float64) {
	g.ArenaW = w
	g.ArenaH = h
	if g.Food != nil && !g.Food.InBounds(w, h) {
		g.Food.Spawn(w, h)
	}
}

// Update runs one frame. Commands not legal in the current state are
// silently ignored; the surrounding UI is expected not to offer them.
func (g *Game) Update(in InputSnapshot) {
	switch g.State {
	case StateAuth:
		// Waiting on SetPlayerName.

	case StateStart:
		if in.Start {
			g.startSession()
		} else if in.Customize {
			g.enterCustomize()
		}

	case StatePlaying:
		if in.Pause {
			g.transition(StatePaused)
		} else {
			g.tickPlaying(in)
			return
		}

	case StatePaused:
		if in.Pause {
			g.transition(StatePlaying)
		} else if in.Customize {
			g.enterCustomize()
		}

	case StateOver:
		if in.Start {
			g.startSession()
		} else if in.Customize {
			g.enterCustomize()
		}

	case StateCustomize:
		if in.Back {
			g.transition(g.prior)
		}
	}

	// Food and particles keep animating outside Playing for visual
	// continuity; the snake does not move.
	if g.Snake != nil {
		g.Food.Update()
		g.Particles.Update()
	}
}

// tickPlaying is the fixed-per-frame simulation step.
func (g *Game) tickPlaying(in InputSnapshot) {
	now := g.clock.NowMillis()

	// Gravity: scheduler and player command share the one rotation path.
	if now-g.lastRotationMs >= GravityIntervalMs {
		g.rotateGravity(now)
	}
	if in.ToggleGravity {
		g.rotateGravity(now)
	}

	dirs := in.Dirs.Merge(in.Pointer)
	g.Snake.Update(dirs, g.Gravity.Current())
	g.Food.Update()
	g.Particles.Update()

	head := g.Snake.Head()
	if head.DistanceTo(g.Food.Position) < FoodSize+SnakeWidth {
		g.Score += FoodScore
		g.Snake.Grow()
		g.Particles.Burst(g.Food.Position, g.Theme.Particle, EatBurstCount)
		g.bus.Emit(Event{Type: EventFoodEaten, X: g.Food.Position.X, Y: g.Food.Position.Y, Data: g.Score})
		g.Food.Spawn(g.ArenaW, g.ArenaH)
	}

	// Collision is suppressed entirely during the grace period.
	if now-g.sessionStartMs > GracePeriodMs && g.Snake.CheckCollision(g.ArenaW, g.ArenaH) {
		g.endSession(head)
	}
}

// startSession resets all session entities and enters Playing. Legal from
// Start and Over.
func (g *Game) startSession() {
	now := g.clock.NowMillis()
	g.sessionID = uuid.NewString()

	// Session RNG seed derived from identity and start time: reproducible
	// for a fixed clock, varied across real runs.
	seed := xxhash.Sum64String(g.PlayerName) ^ uint64(now+1)
	rng := NewRand(seed)

	g.Score = 0
	g.Snake = NewSnake(g.ArenaW/2, g.ArenaH/2)
	g.Food = NewFood(rng)
	g.Food.Spawn(g.ArenaW, g.ArenaH)
	g.Particles = NewParticleSystem(rng)
	g.Gravity = NewGravityField()
	g.sessionStartMs = now
	g.lastRotationMs = now

	g.log.Info("session started",
		zap.String("session", g.sessionID),
		zap.String("player", g.PlayerName),
		zap.Float64("arena_w", g.ArenaW),
		zap.Float64("arena_h", g.ArenaH),
	)
	g.transition(StatePlaying)
}

// endSession handles a fatal collision: death burst, high score, Over.
func (g *Game) endSession(head Vec) {
	g.Particles.Burst(head, g.Color.Col, DeathBurstCount)
	g.bus.Emit(Event{Type: EventSnakeDied, X: head.X, Y: head.Y, Data: g.Score})

	if g.Score > g.HighScore {
		g.HighScore = g.Score
		g.store.Set(ProfileKeyHighScore, strconv.Itoa(g.Score))
		g.bus.Emit(Event{Type: EventHighScore, Data: g.Score})
		g.log.Info("high score",
			zap.String("session", g.sessionID),
			zap.Int("score", g.Score),
		)
	}
	g.log.Info("session over",
		zap.String("session", g.sessionID),
		zap.Int("score", g.Score),
	)
	g.transition(StateOver)
}

func (g *Game) rotateGravity(now int64) {
	dir := g.Gravity.Advance()
	g.lastRotationMs = now
	g.bus.Emit(Event{Type: EventGravityRotated, Data: g.Gravity.Index()})
	g.log.Debug("gravity rotated",
		zap.String("session", g.sessionID),
		zap.String("direction", dir.Name),
	)
}

// enterCustomize remembers where to return to.
func (g *Game) enterCustomize() {
	g.prior = g.State
	g.transition(StateCustomize)
}

func (g *Game) transition(to GameState) {
	if to == g.State {
		return
	}
	from := g.State
	g.State = to
	g.bus.Emit(Event{Type: EventStateChanged, Data: int(to)})
	g.log.Debug("state changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
}

package game

// Snapshot is the immutable per-frame view handed to the render sink. The
// slices are copies: presentation can't alias live simulation state, and a
// captured snapshot doubles as a determinism probe in tests.
type Snapshot struct {
	State     GameState
	Score     int
	HighScore int
	Player    string

	Trail     []Vec
	Heading   float64
	FoodPos   Vec
	FoodPhase float64
	Particles []Particle

	Gravity      GravityDirection
	GravityIndex int

	Color SnakeColor
	Theme ThemeConfig
}

// Snapshot captures the current game state. Safe to call in any state; the
// entity fields are zero before the first session.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:     g.State,
		Score:     g.Score,
		HighScore: g.HighScore,
		Player:    g.PlayerName,
		Color:     g.Color,
		Theme:     g.Theme,
	}
	if g.Snake != nil {
		snap.Trail = append([]Vec(nil), g.Snake.Trail...)
		snap.Heading = g.Snake.Heading
	}
	if g.Food != nil {
		snap.FoodPos = g.Food.Position
		snap.FoodPhase = g.Food.AnimationPhase
	}
	if g.Particles != nil {
		snap.Particles = append([]Particle(nil), g.Particles.P...)
	}
	if g.Gravity != nil {
		snap.Gravity = g.Gravity.Current()
		snap.GravityIndex = g.Gravity.Index()
	}
	return snap
}

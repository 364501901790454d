package game

// Arena defaults (world pixels). Actual dimensions come from the host
// viewport and may change between sessions.
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Snake tuning.
const (
	SnakeWidth       = 20.0
	SnakeStartLength = 20  // trail points at session start
	SnakeGrowth      = 10  // trail points added per food
	SnakeBaseSpeed   = 3.0 // world pixels per tick
	SnakeMaxSpeed    = 6.0
	SpeedIncrement   = 0.2
	SnakeTurnRate    = 0.15 // fraction of the remaining angle closed per tick

	// Trail points nearest the head ignored by the self-collision test, so
	// tight turns don't register as hits. A tolerance tunable, not physics.
	SelfCollisionSkip = 20
)

// Gravity.
const (
	GravityForce      = 0.15 // velocity added per tick along the active direction
	GravityIntervalMs = 8000 // automatic rotation period (wall clock)
)

// Food.
const (
	FoodSize         = 15.0
	FoodPadding      = 50.0 // spawn margin from the arena edges
	FoodBobIncrement = 0.1  // animation phase advance per tick, cosmetic
	FoodScore        = 10
)

// Session timing.
const (
	GracePeriodMs = 1000 // collision checks suppressed after session start
)

// Particle bursts.
const (
	EatBurstCount   = 20
	DeathBurstCount = 40
)

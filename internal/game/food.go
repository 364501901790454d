package game

// Food is the single active pickup. It is never destroyed, only relocated:
// consumption and arena resizes both go through Spawn.
type Food struct {
	Position       Vec
	AnimationPhase float64 // drives the idle bounce, no gameplay effect

	rng *Rand
}

func NewFood(rng *Rand) *Food {
	return &Food{rng: rng}
}

// Spawn relocates the food to a uniformly random position at least
// FoodPadding away from every edge of the given arena.
func (f *Food) Spawn(arenaW, arenaH float64) {
	f.Position = Vec{
		X: f.rng.RangeF(FoodPadding, arenaW-FoodPadding),
		Y: f.rng.RangeF(FoodPadding, arenaH-FoodPadding),
	}
}

// Update advances the idle animation one tick.
func (f *Food) Update() {
	f.AnimationPhase += FoodBobIncrement
}

// InBounds reports whether the food still satisfies its padding invariant
// for the given arena. Used after a resize to decide on a respawn.
func (f *Food) InBounds(arenaW, arenaH float64) bool {
	return f.Position.X >= FoodPadding && f.Position.X <= arenaW-FoodPadding &&
		f.Position.Y >= FoodPadding && f.Position.Y <= arenaH-FoodPadding
}

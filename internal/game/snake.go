package game

import "math"

// DirInput is the merged directional input for one tick. Multiple sources
// OR together before the snake sees it.
type DirInput struct {
	Left, Right, Up, Down bool
}

// Any reports whether any direction is pressed.
func (d DirInput) Any() bool {
	return d.Left || d.Right || d.Up || d.Down
}

// Merge ORs other into d. Later sources never override earlier ones.
func (d DirInput) Merge(other DirInput) DirInput {
	return DirInput{
		Left:  d.Left || other.Left,
		Right: d.Right || other.Right,
		Up:    d.Up || other.Up,
		Down:  d.Down || other.Down,
	}
}

// Snake is the player-controlled entity: a heading, a speed, and a trail of
// recent head positions forming the visible body.
type Snake struct {
	Trail        []Vec // index 0 = newest (head)
	TargetLength int   // trail cap; the trail lags this after growth
	Heading      float64
	Velocity     Vec
	Speed        float64
}

// NewSnake creates a snake at (x, y). The trail starts with a single point
// and fills toward TargetLength as the snake moves.
func NewSnake(x, y float64) *Snake {
	trail := make([]Vec, 1, SnakeStartLength+SnakeGrowth)
	trail[0] = Vec{X: x, Y: y}
	return &Snake{
		Trail:        trail,
		TargetLength: SnakeStartLength,
		Speed:        SnakeBaseSpeed,
	}
}

// Head returns the current head position.
func (s *Snake) Head() Vec {
	return s.Trail[0]
}

// Update advances the snake one tick: steer toward the input direction,
// apply gravity to the velocity, integrate, and maintain the trail.
func (s *Snake) Update(input DirInput, gravity GravityDirection) {
	// Steering target from the combined input. No input leaves the heading
	// unchanged; it never decays toward zero.
	if input.Any() {
		var dx, dy float64
		if input.Left {
			dx -= 1
		}
		if input.Right {
			dx += 1
		}
		if input.Up {
			dy -= 1
		}
		if input.Down {
			dy += 1
		}
		target := math.Atan2(dy, dx)
		// First-order exponential steering: close a fixed fraction of the
		// remaining angle each tick. angDiff keeps the correction stable
		// across the ±π boundary.
		s.Heading += angDiff(s.Heading, target) * SnakeTurnRate
	}

	// Forward velocity from heading, then gravity drift. Gravity perturbs
	// velocity only; it never touches the heading.
	s.Velocity = Vec{X: math.Cos(s.Heading), Y: math.Sin(s.Heading)}
	s.Velocity.Scale(s.Speed)
	force := gravity.Dir.Copy()
	force.Scale(GravityForce)
	s.Velocity.Add(force)

	// Single-step Euler integration, then push the new head. Copy so trail
	// points never alias each other.
	head := s.Head().Copy()
	head.Add(s.Velocity)
	s.Trail = append(s.Trail, Vec{})
	copy(s.Trail[1:], s.Trail[0:])
	s.Trail[0] = head

	// FIFO: drop the oldest point once over target length.
	if len(s.Trail) > s.TargetLength {
		s.Trail = s.Trail[:s.TargetLength]
	}
}

// Grow raises the trail cap and the speed. Called once per food consumed.
// Speed only ever increases within a session, capped at SnakeMaxSpeed.
func (s *Snake) Grow() {
	s.TargetLength += SnakeGrowth
	s.Speed = math.Min(s.Speed+SpeedIncrement, SnakeMaxSpeed)
}

// CheckCollision reports whether the head left the arena or hit the body.
// The first SelfCollisionSkip trail points are ignored so the head may pass
// close to very recent trail during tight turns.
func (s *Snake) CheckCollision(arenaW, arenaH float64) bool {
	head := s.Head()
	if head.X < 0 || head.X > arenaW || head.Y < 0 || head.Y > arenaH {
		return true
	}
	for i := SelfCollisionSkip; i < len(s.Trail); i++ {
		if head.DistanceTo(s.Trail[i]) < SnakeWidth*0.8 {
			return true
		}
	}
	return false
}

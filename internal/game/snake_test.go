package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var gravityDown = gravityTable[0]

func TestSteeringClosesFixedFraction(t *testing.T) {
	cases := []struct {
		name    string
		heading float64
		input   DirInput
		target  float64
	}{
		{"turn positive", 0, DirInput{Down: true}, math.Pi / 2},
		{"turn negative", 0, DirInput{Up: true}, -math.Pi / 2},
		{"diagonal", 0, DirInput{Right: true, Down: true}, math.Pi / 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(400, 300)
			s.Heading = tc.heading
			before := angDiff(s.Heading, tc.target)
			s.Update(tc.input, gravityDown)
			after := angDiff(s.Heading, tc.target)
			require.InDelta(t, math.Abs(before)*(1-SnakeTurnRate), math.Abs(after), 1e-12)
			require.Equal(t, math.Signbit(before), math.Signbit(after))
		})
	}
}

func TestSteeringStableAcrossPiBoundary(t *testing.T) {
	s := NewSnake(400, 300)
	s.Heading = math.Pi - 0.05
	// Target atan2(-1,-1) = -3π/4. The normalized correction is the short
	// way across the ±π boundary (≈ +π/4), not a near-full spin.
	s.Update(DirInput{Left: true, Up: true}, gravityDown)
	d := angDiff(math.Pi-0.05, -3*math.Pi/4)
	require.InDelta(t, (math.Pi-0.05)+d*SnakeTurnRate, s.Heading, 1e-12)
}

func TestNoInputLeavesHeadingUnchanged(t *testing.T) {
	s := NewSnake(400, 300)
	s.Heading = 1.234
	s.Update(DirInput{}, gravityDown)
	require.Equal(t, 1.234, s.Heading)
}

func TestGravityPerturbsVelocityNotHeading(t *testing.T) {
	s := NewSnake(400, 300)
	s.Heading = 0
	s.Update(DirInput{}, gravityDown)
	require.Equal(t, 0.0, s.Heading)
	require.InDelta(t, s.Speed, s.Velocity.X, 1e-12)
	require.InDelta(t, GravityForce, s.Velocity.Y, 1e-12)
}

func TestTrailNeverExceedsTargetLength(t *testing.T) {
	s := NewSnake(400, 300)
	for i := 0; i < 200; i++ {
		s.Update(DirInput{Right: true}, gravityDown)
		require.LessOrEqual(t, len(s.Trail), s.TargetLength)
	}
	require.Equal(t, s.TargetLength, len(s.Trail))
}

func TestTrailReachesNewTargetExactlyAfterGrow(t *testing.T) {
	s := NewSnake(400, 300)
	for i := 0; i < SnakeStartLength+5; i++ {
		s.Update(DirInput{Right: true}, gravityDown)
	}
	require.Equal(t, SnakeStartLength, len(s.Trail))

	s.Grow()
	require.Equal(t, SnakeStartLength+SnakeGrowth, s.TargetLength)

	// The trail lags the target and fills in one point per tick.
	for i := 0; i < SnakeGrowth; i++ {
		require.Equal(t, SnakeStartLength+i, len(s.Trail))
		s.Update(DirInput{Right: true}, gravityDown)
	}
	require.Equal(t, s.TargetLength, len(s.Trail))

	// No overshoot on further ticks.
	s.Update(DirInput{Right: true}, gravityDown)
	require.Equal(t, s.TargetLength, len(s.Trail))
}

func TestGrowSpeedCap(t *testing.T) {
	s := NewSnake(400, 300)
	for i := 0; i < 100; i++ {
		prev := s.Speed
		s.Grow()
		require.GreaterOrEqual(t, s.Speed, prev)
		require.LessOrEqual(t, s.Speed, SnakeMaxSpeed)
	}
	require.Equal(t, SnakeMaxSpeed, s.Speed)
}

func TestCollisionFalseInsideBounds(t *testing.T) {
	s := NewSnake(400, 300)
	for i := 0; i < 50; i++ {
		s.Update(DirInput{Right: true}, gravityDown)
		// Straight mover well inside an oversized arena never collides.
		require.False(t, s.CheckCollision(5000, 5000))
	}
}

func TestCollisionTrueOnWallExit(t *testing.T) {
	cases := []struct {
		name string
		head Vec
	}{
		{"left", Vec{X: -0.1, Y: 300}},
		{"right", Vec{X: 800.1, Y: 300}},
		{"top", Vec{X: 400, Y: -0.1}},
		{"bottom", Vec{X: 400, Y: 600.1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(400, 300)
			s.Trail[0] = tc.head
			require.True(t, s.CheckCollision(800, 600))
		})
	}
}

func TestSelfCollisionSkipsRecentSegments(t *testing.T) {
	s := NewSnake(400, 300)
	s.TargetLength = 60

	// Points inside the skip window directly under the head are tolerated:
	// indices 1..SelfCollisionSkip-1 are never checked.
	for len(s.Trail) < SelfCollisionSkip {
		s.Trail = append(s.Trail, s.Trail[0].Copy())
	}
	require.False(t, s.CheckCollision(800, 600))

	// The first point past the skip window within 0.8*width trips it.
	s.Trail = append(s.Trail, Vec{X: 400 + SnakeWidth*0.5, Y: 300})
	require.True(t, s.CheckCollision(800, 600))
}

// TestClosedFormIntegration replays the steering/gravity/Euler tick formula
// independently and checks the snake against it: 30 ticks steering toward
// down-right, then 200 ticks with the input held.
func TestClosedFormIntegration(t *testing.T) {
	s := NewSnake(400, 300)
	in := DirInput{Right: true, Down: true}

	heading := 0.0
	x, y := 400.0, 300.0
	target := math.Atan2(1, 1)
	for i := 0; i < 230; i++ {
		s.Update(in, gravityDown)

		heading += angDiff(heading, target) * SnakeTurnRate
		x += math.Cos(heading)*SnakeBaseSpeed
		y += math.Sin(heading)*SnakeBaseSpeed + GravityForce
	}

	require.InDelta(t, target, s.Heading, 1e-3)
	require.InDelta(t, heading, s.Heading, 1e-9)
	require.InDelta(t, x, s.Head().X, 1e-6)
	require.InDelta(t, y, s.Head().Y, 1e-6)
}

func TestTrailPointsDoNotAlias(t *testing.T) {
	s := NewSnake(400, 300)
	s.Update(DirInput{Right: true}, gravityDown)
	s.Update(DirInput{Right: true}, gravityDown)
	head := s.Trail[0]
	s.Trail[1].Add(Vec{X: 100, Y: 100})
	require.Equal(t, head, s.Trail[0])
}

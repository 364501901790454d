package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBurstSpawnsCountWithinRanges(t *testing.T) {
	ps := NewParticleSystem(NewRand(99))
	ps.Burst(Vec{X: 100, Y: 100}, RGB{R: 255}, 50)
	require.Len(t, ps.P, 50)
	for _, p := range ps.P {
		spd := p.Velocity.DistanceTo(Vec{})
		require.GreaterOrEqual(t, spd, 1.0)
		require.Less(t, spd, 4.0)
		require.GreaterOrEqual(t, p.Decay, 0.02)
		require.Less(t, p.Decay, 0.04)
		require.Equal(t, 1.0, p.Life)
		require.Equal(t, RGB{R: 255}, p.Col)
	}
}

func TestParticlesExpireByDecay(t *testing.T) {
	ps := NewParticleSystem(NewRand(5))
	ps.Burst(Vec{}, RGB{}, 30)

	// Max decay is < 0.04: after 10 ticks everything is still alive.
	for i := 0; i < 10; i++ {
		ps.Update()
	}
	require.Len(t, ps.P, 30)

	// Min decay is 0.02: life hits zero within 50 ticks.
	for i := 0; i < 41; i++ {
		ps.Update()
	}
	require.Empty(t, ps.P)
}

func TestParticleCountDeterministicPerSeed(t *testing.T) {
	run := func() int {
		ps := NewParticleSystem(NewRand(123))
		ps.Burst(Vec{}, RGB{}, 40)
		for i := 0; i < 35; i++ {
			ps.Update()
		}
		return len(ps.P)
	}
	first := run()
	require.Equal(t, first, run())
	require.Greater(t, first, 0)
	require.Less(t, first, 40)
}

func TestSurvivorsKeepRelativeOrder(t *testing.T) {
	ps := NewParticleSystem(NewRand(321))
	ps.Burst(Vec{}, RGB{}, 60)
	spawned := make([]float64, len(ps.P))
	for i, p := range ps.P {
		spawned[i] = p.Decay
	}

	for i := 0; i < 35; i++ {
		ps.Update()
	}
	require.NotEmpty(t, ps.P)

	// Surviving decays must be a subsequence of the spawn order.
	j := 0
	for _, p := range ps.P {
		for j < len(spawned) && spawned[j] != p.Decay {
			j++
		}
		require.Less(t, j, len(spawned), "survivor out of spawn order")
		j++
	}
}

func TestParticleIntegration(t *testing.T) {
	ps := NewParticleSystem(NewRand(777))
	ps.Burst(Vec{X: 10, Y: 20}, RGB{}, 1)
	v := ps.P[0].Velocity
	ps.Update()
	require.InDelta(t, 10+v.X, ps.P[0].Position.X, 1e-12)
	require.InDelta(t, 20+v.Y, ps.P[0].Position.Y, 1e-12)
}

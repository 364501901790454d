package game

import "math"

// Particle is a short-lived cosmetic point spawned on food and death events.
// Color and decay are fixed at creation.
type Particle struct {
	Position Vec
	Velocity Vec
	Life     float64 // 1 at spawn, removed at <= 0
	Decay    float64 // life lost per tick
	Col      RGB
}

// ParticleSystem owns the active particle set. Purely visual: nothing in the
// simulation reads particle state.
type ParticleSystem struct {
	P   []Particle
	rng *Rand
}

func NewParticleSystem(rng *Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
}

// Burst spawns count particles at origin with random outward velocities.
// Speed in [1,4), decay in [0.02,0.04).
func (ps *ParticleSystem) Burst(origin Vec, col RGB, count int) {
	for i := 0; i < count; i++ {
		ang := ps.rng.RangeF(0, 2*math.Pi)
		spd := ps.rng.RangeF(1, 4)
		ps.P = append(ps.P, Particle{
			Position: origin.Copy(),
			Velocity: Vec{X: math.Cos(ang) * spd, Y: math.Sin(ang) * spd},
			Life:     1.0,
			Decay:    ps.rng.RangeF(0.02, 0.04),
			Col:      col,
		})
	}
}

// Update integrates and ages every particle, dropping expired ones.
// Survivors keep their relative order (stable compaction).
func (ps *ParticleSystem) Update() {
	live := ps.P[:0]
	for i := range ps.P {
		p := &ps.P[i]
		p.Position.Add(p.Velocity)
		p.Life -= p.Decay
		if p.Life > 0 {
			live = append(live, *p)
		}
	}
	ps.P = live
}

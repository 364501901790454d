package game

import "math"

// Vec is a 2D point or velocity. The arithmetic methods mutate in place;
// use Copy whenever a position is captured for the trail, so segments never
// alias a still-moving head.
type Vec struct {
	X, Y float64
}

// Add accumulates other into v.
func (v *Vec) Add(other Vec) {
	v.X += other.X
	v.Y += other.Y
}

// Scale multiplies both components by n.
func (v *Vec) Scale(n float64) {
	v.X *= n
	v.Y *= n
}

// Copy returns an independent value.
func (v Vec) Copy() Vec {
	return Vec{X: v.X, Y: v.Y}
}

// DistanceTo returns the euclidean distance to other.
func (v Vec) DistanceTo(other Vec) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

package game

import "math"

// Packed point-sprite vertex layout shared with the renderer:
// [x, y, size, r, g, b, a] * N.
const RenderStride = 7

// TrailRenderData appends the snake body to buf, head first, tapering size
// and darkening toward the tail.
func (s Snapshot) TrailRenderData(buf []float32) []float32 {
	buf = buf[:0]
	n := len(s.Trail)
	if n == 0 {
		return buf
	}
	head := s.Color.Col
	tail := lerpRGB(head, RGB{}, 0.6)
	for i, p := range s.Trail {
		t := float64(i) / float64(n)
		col := lerpRGB(head, tail, t)
		size := float32(SnakeWidth * (1.0 - 0.5*t))
		buf = append(buf,
			float32(p.X), float32(p.Y), size,
			float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1,
		)
	}
	return buf
}

// FoodRenderData appends the food sprite, bobbing with the animation phase.
func (s Snapshot) FoodRenderData(buf []float32) []float32 {
	buf = buf[:0]
	bob := math.Sin(s.FoodPhase) * 3.0
	size := float32(FoodSize + math.Sin(s.FoodPhase*2)*2.0)
	col := s.Theme.Accent
	buf = append(buf,
		float32(s.FoodPos.X), float32(s.FoodPos.Y+bob), size,
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1,
	)
	return buf
}

// ParticleRenderData appends live particles, fading alpha with remaining
// life.
func (s Snapshot) ParticleRenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range s.Particles {
		a := float32(clampF(p.Life, 0, 1))
		buf = append(buf,
			float32(p.Position.X), float32(p.Position.Y), 4,
			float32(p.Col.R)/255*a, float32(p.Col.G)/255*a, float32(p.Col.B)/255*a, a,
		)
	}
	return buf
}

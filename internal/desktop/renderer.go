package desktop

import (
	"github.com/aquilax/go-perlin"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/openMh/snike/internal/game"
)

const gridStep = 40.0

// Renderer draws the snapshot with a single point-sprite pipeline: one
// program for solid sprites (trail, food, grid) and one additive glow pass
// for burst particles.
type Renderer struct {
	progRound uint32
	progGlow  uint32
	vao, vbo  uint32

	noise *perlin.Perlin

	// Reusable vertex buffers.
	trailBuf, foodBuf, partBuf, gridBuf []float32
}

func NewRenderer() (*Renderer, error) {
	progRound, err := newProgram(pointVertSrc, roundFragSrc)
	if err != nil {
		return nil, err
	}
	progGlow, err := newProgram(pointVertSrc, glowFragSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		progRound: progRound,
		progGlow:  progGlow,
		noise:     perlin.NewPerlin(2, 2, 3, 1),
	}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(game.RenderStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 3*4)

	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.progRound)
	gl.DeleteProgram(r.progGlow)
}

// DrawFrame renders one snapshot. t is elapsed seconds, used only for the
// drifting background grid.
func (r *Renderer) DrawFrame(snap game.Snapshot, t float64, fbW, fbH int) {
	bg := snap.Theme.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Enable(gl.BLEND)

	r.gridBuf = r.gridPoints(r.gridBuf, snap.Theme.Grid, fbW, fbH, t)
	r.drawPoints(r.gridBuf, r.progRound, false, fbW, fbH)

	if snap.State == game.StatePlaying || snap.State == game.StatePaused || snap.State == game.StateOver {
		r.trailBuf = snap.TrailRenderData(r.trailBuf)
		r.drawPoints(r.trailBuf, r.progRound, false, fbW, fbH)

		r.foodBuf = snap.FoodRenderData(r.foodBuf)
		r.drawPoints(r.foodBuf, r.progRound, false, fbW, fbH)

		r.partBuf = snap.ParticleRenderData(r.partBuf)
		r.drawPoints(r.partBuf, r.progGlow, true, fbW, fbH)
	}
}

// gridPoints fills buf with the background dot grid, each dot displaced by
// slowly drifting noise. Purely cosmetic.
func (r *Renderer) gridPoints(buf []float32, col game.RGB, fbW, fbH int, t float64) []float32 {
	buf = buf[:0]
	for gy := gridStep; gy < float64(fbH); gy += gridStep {
		for gx := gridStep; gx < float64(fbW); gx += gridStep {
			dx := r.noise.Noise3D(gx*0.01, gy*0.01, t*0.05) * 8
			dy := r.noise.Noise3D(gx*0.01+100, gy*0.01, t*0.05) * 8
			buf = append(buf,
				float32(gx+dx), float32(gy+dy), 2,
				float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, 1,
			)
		}
	}
	return buf
}

func (r *Renderer) drawPoints(buf []float32, prog uint32, additive bool, fbW, fbH int) {
	n := len(buf) / game.RenderStride
	if n == 0 {
		return
	}
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.UseProgram(prog)
	loc := gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	gl.Uniform2f(loc, float32(fbW), float32(fbH))

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(n))
}

package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/openMh/snike/internal/game"
)

// Run drives the desktop session: window, renderer, audio, and the frame
// loop feeding InputSnapshots into the game. Blocks until the window closes.
func Run(g *game.Game, log *zap.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// A failed audio init degrades to silence; it must never reach the core.
	audio, err := InitAudio()
	if err != nil {
		log.Warn("audio init failed, continuing without sound", zap.Error(err))
		audio = nil
	}
	g.Bus().Subscribe(game.EventFoodEaten, func(game.Event) { audio.PlaySound(SoundEat) })
	g.Bus().Subscribe(game.EventSnakeDied, func(game.Event) { audio.PlaySound(SoundGameOver) })
	g.Bus().Subscribe(game.EventGravityRotated, func(game.Event) { audio.PlaySound(SoundGravityShift) })
	g.Bus().Subscribe(game.EventHighScore, func(game.Event) { audio.PlaySound(SoundHighScore) })
	g.Bus().Subscribe(game.EventStateChanged, func(e game.Event) {
		if game.GameState(e.Data) == game.StateCustomize || game.GameState(e.Data) == game.StateStart {
			audio.PlaySound(SoundMenuSelect)
		}
	})

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	input := NewInput()
	lastW, lastH := window.GetSize()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		// Track window resizes so food bounds stay valid.
		if w, h := window.GetSize(); w != lastW || h != lastH {
			lastW, lastH = w, h
			g.Resize(float64(w), float64(h))
		}

		var head game.Vec
		havePointer := false
		if g.Snake != nil {
			head = g.Snake.Head()
			havePointer = true
		}
		in := input.Snapshot(window, head, havePointer)

		// Customize hotkeys (no-ops outside the customize screen).
		if input.justPressed(window, glfw.Key1) {
			g.CycleColor()
		}
		if input.justPressed(window, glfw.Key2) {
			g.CycleTheme()
		}

		g.Update(in)

		snap := g.Snapshot()
		rend.DrawFrame(snap, glfw.GetTime(), fbW, fbH)
		window.SetTitle(windowTitle(snap))
		window.SwapBuffers()
	}
	return nil
}

func windowTitle(snap game.Snapshot) string {
	switch snap.State {
	case game.StatePlaying, game.StatePaused:
		return fmt.Sprintf("Snike %c — %s — score %d (best %d)",
			snap.Gravity.Glyph, snap.State, snap.Score, snap.HighScore)
	case game.StateOver:
		return fmt.Sprintf("Snike — game over — score %d (best %d) — space to restart",
			snap.Score, snap.HighScore)
	case game.StateCustomize:
		return fmt.Sprintf("Snike — customize — 1: %s, 2: %s, b: back",
			snap.Color.Name, snap.Theme.Name)
	default:
		return "Snike — space to start, c to customize"
	}
}

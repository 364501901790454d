package desktop

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/openMh/snike/internal/game"
)

// Input normalizes keyboard and pointer state into one InputSnapshot per
// frame. Edge-triggered commands fire on the press transition only.
type Input struct {
	prevKeys  map[glfw.Key]bool
	prevMouse map[glfw.MouseButton]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys:  make(map[glfw.Key]bool),
		prevMouse: make(map[glfw.MouseButton]bool),
	}
}

func (in *Input) justPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func held(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// Snapshot reads the devices once. head is the snake head in window
// coordinates, used by the pointer source; the two direction sources are
// merged by the game, not here.
func (in *Input) Snapshot(window *glfw.Window, head game.Vec, havePointerTarget bool) game.InputSnapshot {
	snap := game.InputSnapshot{
		Dirs: game.DirInput{
			Left:  held(window, glfw.KeyLeft, glfw.KeyA),
			Right: held(window, glfw.KeyRight, glfw.KeyD),
			Up:    held(window, glfw.KeyUp, glfw.KeyW),
			Down:  held(window, glfw.KeyDown, glfw.KeyS),
		},
		ToggleGravity: in.justPressed(window, glfw.KeyG),
		Pause:         in.justPressed(window, glfw.KeyP),
		Start:         in.justPressed(window, glfw.KeySpace),
		Customize:     in.justPressed(window, glfw.KeyC),
		Back:          in.justPressed(window, glfw.KeyB),
	}

	// Pointer source: while the left button is held, steer toward the
	// cursor, quantized onto the four logical directions.
	if havePointerTarget && window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
		cx, cy := window.GetCursorPos()
		snap.Pointer = pointerDirs(cx-head.X, cy-head.Y)
	}
	return snap
}

// pointerDirs maps a cursor offset to direction booleans. Offsets inside
// the dead zone produce no input so the heading holds.
func pointerDirs(dx, dy float64) game.DirInput {
	const deadZone = 10.0
	var d game.DirInput
	if math.Hypot(dx, dy) < deadZone {
		return d
	}
	// Split the plane into octants so diagonals press two directions.
	if dx < -math.Abs(dy)*0.414 {
		d.Left = true
	}
	if dx > math.Abs(dy)*0.414 {
		d.Right = true
	}
	if dy < -math.Abs(dx)*0.414 {
		d.Up = true
	}
	if dy > math.Abs(dx)*0.414 {
		d.Down = true
	}
	return d
}

package desktop

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openMh/snike/internal/game"
)

func TestPointerDirsDeadZone(t *testing.T) {
	require.Equal(t, game.DirInput{}, pointerDirs(3, -4))
}

func TestPointerDirsCardinals(t *testing.T) {
	require.Equal(t, game.DirInput{Right: true}, pointerDirs(100, 0))
	require.Equal(t, game.DirInput{Left: true}, pointerDirs(-100, 0))
	require.Equal(t, game.DirInput{Up: true}, pointerDirs(0, -100))
	require.Equal(t, game.DirInput{Down: true}, pointerDirs(0, 100))
}

func TestPointerDirsDiagonalsPressTwo(t *testing.T) {
	require.Equal(t, game.DirInput{Right: true, Down: true}, pointerDirs(80, 80))
	require.Equal(t, game.DirInput{Left: true, Up: true}, pointerDirs(-80, -80))
}

package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVecMutatesInPlace(t *testing.T) {
	v := Vec{X: 1, Y: 2}
	v.Add(Vec{X: 3, Y: -1})
	require.Equal(t, Vec{X: 4, Y: 1}, v)

	v.Scale(2)
	require.Equal(t, Vec{X: 8, Y: 2}, v)
}

func TestVecCopyIsIndependent(t *testing.T) {
	v := Vec{X: 5, Y: 5}
	c := v.Copy()
	v.Add(Vec{X: 1, Y: 1})
	require.Equal(t, Vec{X: 5, Y: 5}, c)
	require.Equal(t, Vec{X: 6, Y: 6}, v)
}

func TestVecDistanceTo(t *testing.T) {
	a := Vec{X: 0, Y: 0}
	b := Vec{X: 3, Y: 4}
	require.InDelta(t, 5.0, a.DistanceTo(b), 1e-12)
	require.InDelta(t, 5.0, b.DistanceTo(a), 1e-12)
	require.Zero(t, a.DistanceTo(a))
}

package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.Get("name")
	require.False(t, ok)

	s.Set("name", "abc")
	v, ok := s.Get("name")
	require.True(t, ok)
	require.Equal(t, "abc", v)

	// Last write wins.
	s.Set("name", "def")
	v, _ = s.Get("name")
	require.Equal(t, "def", v)
}

func TestFileStoreSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	s := NewFileStore(path)
	s.Set(ProfileKeyName, "tester")
	s.Set(ProfileKeyHighScore, "120")
	s.Set(ProfileKeyTheme, "sunset")

	reloaded := NewFileStore(path)
	v, ok := reloaded.Get(ProfileKeyName)
	require.True(t, ok)
	require.Equal(t, "tester", v)
	require.Equal(t, 120, storedHighScore(reloaded))
	v, _ = reloaded.Get(ProfileKeyTheme)
	require.Equal(t, "sunset", v)
}

func TestFileStoreMissingFileIsEmptyProfile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.yaml"))
	_, ok := s.Get(ProfileKeyName)
	require.False(t, ok)
}

func TestFileStoreMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not yaml"), 0o644))

	s := NewFileStore(path)
	_, ok := s.Get(ProfileKeyName)
	require.False(t, ok)

	// The store still saves over the broken file.
	s.Set(ProfileKeyName, "fresh")
	v, _ := NewFileStore(path).Get(ProfileKeyName)
	require.Equal(t, "fresh", v)
}

func TestStoredHighScoreFallbacks(t *testing.T) {
	s := NewMemoryStore()
	require.Equal(t, 0, storedHighScore(s))

	s.Set(ProfileKeyHighScore, "oops")
	require.Equal(t, 0, storedHighScore(s))

	s.Set(ProfileKeyHighScore, "-3")
	require.Equal(t, 0, storedHighScore(s))

	s.Set(ProfileKeyHighScore, "77")
	require.Equal(t, 77, storedHighScore(s))
}

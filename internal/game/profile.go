package game

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Profile keys. Values are strings; the high score is a decimal string.
const (
	ProfileKeyName      = "name"
	ProfileKeyHighScore = "highscore"
	ProfileKeyColor     = "color"
	ProfileKeyTheme     = "theme"
)

// ProfileStore is the key/value persistence capability injected into the
// Game. Writes are fire-and-forget; last write wins. Missing or malformed
// values always fall back to defaults, never to an error.
type ProfileStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemoryStore is an in-memory ProfileStore, used headless and in tests.
type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

// FileStore persists the profile as a flat YAML map. Each Set rewrites the
// whole file; profiles are four keys, so this stays cheap.
type FileStore struct {
	mu   sync.Mutex
	path string
	m    map[string]string
}

// NewFileStore loads the profile at path. A missing or unreadable file
// yields an empty profile rather than an error; the save path is kept.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, m: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	// Malformed profile data falls back to empty, per the error design.
	_ = yaml.Unmarshal(data, &s.m)
	if s.m == nil {
		s.m = make(map[string]string)
	}
	return s
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	if err := s.save(); err != nil {
		// Fire-and-forget by contract: a failed write never reaches gameplay.
		fmt.Fprintf(os.Stderr, "profile save: %v\n", err)
	}
}

func (s *FileStore) save() error {
	data, err := yaml.Marshal(s.m)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// storedHighScore reads the persisted high score, defaulting to 0 on a
// missing or non-integer value.
func storedHighScore(store ProfileStore) int {
	v, ok := store.Get(ProfileKeyHighScore)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

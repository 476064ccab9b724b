// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used when no database is configured, and in tests.
//
// Characteristics:
//   - Keeps words in insertion order plus a set for lookups.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ChristosPoulios/Hangman/internal/words"
)

var (
	// ErrNotFound is returned when removing a word that is not stored.
	ErrNotFound = errors.New("store: word not found")

	// ErrInvalidWord is returned for blank words.
	ErrInvalidWord = errors.New("store: word must not be blank")
)

// Store defines the persistence interface for the vocabulary.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Words returns all stored words in insertion order.
	Words(ctx context.Context) ([]string, error)

	// Add stores word (normalized). Adding an existing word is a no-op.
	Add(ctx context.Context, word string) error

	// Remove deletes word, or returns ErrNotFound.
	Remove(ctx context.Context, word string) error
}

// memory is an in-memory Store implementation.
type memory struct {
	mu    sync.RWMutex        // guards order and set
	order []string            // insertion order
	set   map[string]struct{} // membership
}

// NewMemoryStore constructs an in-memory Store holding seed.
func NewMemoryStore(seed []string) Store {
	m := &memory{set: make(map[string]struct{}, len(seed))}
	for _, w := range seed {
		_ = m.Add(context.Background(), w)
	}
	return m
}

func (m *memory) Words(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.order), nil
}

func (m *memory) Add(ctx context.Context, word string) error {
	w := words.Normalize(word)
	if w == "" {
		return ErrInvalidWord
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.set[w]; ok {
		return nil
	}
	m.set[w] = struct{}{}
	m.order = append(m.order, w)
	return nil
}

func (m *memory) Remove(ctx context.Context, word string) error {
	w := words.Normalize(word)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.set[w]; !ok {
		return ErrNotFound
	}
	delete(m.set, w)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == w })
	return nil
}

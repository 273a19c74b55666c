// internal/store/memory.go
//
// Store interface for the cumulative statistics record, plus an in-memory
// implementation used in tests and when persistence is disabled.
//
// Characteristics of the memory store:
//   - Holds a single stats.Statistics value.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/hangman/internal/stats"
)

// Store defines persistence for the statistics record.
// Implementations may be backed by memory (this file), a JSON file or SQLite.
type Store interface {
	// Load returns the persisted record, or a zero record if none exists yet.
	Load(ctx context.Context) (stats.Statistics, error)

	// Save overwrites the persisted record.
	Save(ctx context.Context, s stats.Statistics) error

	// Close releases any resources held by the store.
	Close() error
}

// Memory is an in-memory Store implementation.
type Memory struct {
	mu    sync.RWMutex
	stats stats.Statistics
	saves int
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() *Memory {
	return &Memory{}
}

// Load returns the last saved record.
func (m *Memory) Load(ctx context.Context) (stats.Statistics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stats, nil
}

// Save replaces the record.
func (m *Memory) Save(ctx context.Context, s stats.Statistics) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats = s
	m.saves++
	return nil
}

// Saves reports how many times Save was called.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func (m *Memory) Close() error { return nil }

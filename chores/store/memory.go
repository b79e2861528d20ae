// Package store provides Store implementations for the chores ledger.
package store

import (
	"context"
	"sync"

	"github.com/smartguy05/chore-app/chores"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu          sync.RWMutex
	entries     map[chores.KidID][]chores.PointEntry
	idempotency map[string]bool
}

func NewMemory() *Memory {
	return &Memory{
		entries:     make(map[chores.KidID][]chores.PointEntry),
		idempotency: make(map[string]bool),
	}
}

// Append adds a single entry. Append-only.
func (m *Memory) Append(_ context.Context, entry chores.PointEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.IdempotencyKey != "" {
		if m.idempotency[entry.IdempotencyKey] {
			return chores.ErrDuplicateEntry
		}
		m.idempotency[entry.IdempotencyKey] = true
	}
	m.entries[entry.KidID] = append(m.entries[entry.KidID], entry)
	return nil
}

// Load returns a kid's entries in append order.
func (m *Memory) Load(_ context.Context, kidID chores.KidID) ([]chores.PointEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.entries[kidID]
	out := make([]chores.PointEntry, len(src))
	copy(out, src)
	return out, nil
}

// Exists checks whether an idempotency key has been used.
func (m *Memory) Exists(_ context.Context, idempotencyKey string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.idempotency[idempotencyKey], nil
}

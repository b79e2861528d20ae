/*
store.go - Persistence interface for point ledger entries

PURPOSE:
  Defines the boundary between the domain logic and entry storage.
  The store is APPEND-ONLY: no Update, no Delete. Corrections are made
  by appending reversal or adjustment entries, never by editing history.

IDEMPOTENCY:
  Every write carries an idempotency key. Writes with a key that already
  exists are rejected, so a retried chore completion cannot double-award
  points.

IMPLEMENTATIONS:
  - store/memory.go: mutex-guarded in-memory store

SEE ALSO:
  - ledger.go: the higher-level ledger built on this interface
*/
package chores

import "context"

// Store persists point ledger entries. Append-only.
type Store interface {
	// Append persists a single entry. Fails with ErrDuplicateEntry if the
	// idempotency key already exists. This is the only write operation.
	Append(ctx context.Context, entry PointEntry) error

	// Load returns all entries for a kid in append order.
	Load(ctx context.Context, kidID KidID) ([]PointEntry, error)

	// Exists checks whether an idempotency key has been used.
	Exists(ctx context.Context, idempotencyKey string) (bool, error)
}

/*
ledger.go - Append-only point ledger

PURPOSE:
  The ledger is the source of truth for every point movement. Balance
  and lifetime-earned totals are always derived by replaying entries;
  there is no stored total that can drift out of sync.

ENTRY TYPES AND HOW THEY COUNT:

  type            delta      balance   lifetime earned
  -----------     --------   -------   ---------------
  earn            positive   yes       yes
  spend           negative   yes       no
  spend_reversal  positive   yes       no
  adjustment      any sign   yes       yes

  Spending and un-spending never touch the lifetime total, so redeeming
  a reward can never cost a level. Adjustments are the only way an admin
  can move the lifetime total (including resets).

CORRECTIONS:
  Mistakes are corrected by appending a compensating entry that
  references the original, never by editing. A mistaken spend gets a
  spend_reversal; a mistaken earn gets a negative adjustment.

SEE ALSO:
  - store.go: the persistence interface underneath
  - tracker.go: the operations that append entries
*/
package chores

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEDGER ENTRIES
// =============================================================================

type EntryType string

const (
	EntryEarn          EntryType = "earn"           // chore/check-in award
	EntrySpend         EntryType = "spend"          // reward redemption
	EntrySpendReversal EntryType = "spend_reversal" // undo a redemption
	EntryAdjustment    EntryType = "adjustment"     // manual admin correction
)

// PointEntry is one immutable movement of points for one kid.
type PointEntry struct {
	ID             EntryID
	KidID          KidID
	Delta          decimal.Decimal
	Type           EntryType
	Reason         string
	ReferenceID    string // chore, redemption, or reversed entry id
	IdempotencyKey string
	CreatedAt      time.Time
}

// =============================================================================
// DERIVED TOTALS
// =============================================================================

// Totals are the two sums derived from a kid's ledger.
type Totals struct {
	// Balance is earned minus spent: what redemptions draw from.
	Balance decimal.Decimal

	// LifetimeEarned is everything ever earned (plus adjustments): what
	// levels are computed from.
	LifetimeEarned decimal.Decimal
}

// =============================================================================
// POINTS LEDGER
// =============================================================================

// PointsLedger wraps a Store with idempotency enforcement and total
// derivation.
type PointsLedger struct {
	store Store
}

func NewPointsLedger(store Store) *PointsLedger {
	return &PointsLedger{store: store}
}

// Append records an entry. Entries with an already-used idempotency key
// are rejected with ErrDuplicateEntry.
func (l *PointsLedger) Append(ctx context.Context, entry PointEntry) error {
	if entry.IdempotencyKey != "" {
		exists, err := l.store.Exists(ctx, entry.IdempotencyKey)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateEntry
		}
	}
	return l.store.Append(ctx, entry)
}

// Entries returns a kid's full ledger in append order.
func (l *PointsLedger) Entries(ctx context.Context, kidID KidID) ([]PointEntry, error) {
	return l.store.Load(ctx, kidID)
}

// Totals replays a kid's ledger into its two derived sums.
func (l *PointsLedger) Totals(ctx context.Context, kidID KidID) (Totals, error) {
	entries, err := l.store.Load(ctx, kidID)
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{Balance: decimal.Zero, LifetimeEarned: decimal.Zero}
	for _, e := range entries {
		totals.Balance = totals.Balance.Add(e.Delta)
		switch e.Type {
		case EntryEarn, EntryAdjustment:
			totals.LifetimeEarned = totals.LifetimeEarned.Add(e.Delta)
		}
	}
	return totals, nil
}

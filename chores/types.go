/*
Package chores tracks chore completions, point earnings, and reward
redemptions for the kids in a household.

PURPOSE:
  This package is the caller side of the leveling engine. It owns the
  point bookkeeping (an append-only ledger per kid) and feeds derived
  totals into the engine from exactly two places:
  - the award path: completing a chore earns points and may level up
  - the display path: the dashboard renders level and progress

KEY DOMAIN RULE:
  Two different totals are derived from the same ledger:

  LifetimeEarned - everything a kid has ever earned. Only ever grows
    (except explicit admin adjustments). This is the total levels are
    computed from: redeeming a reward never costs a level.

  Balance - earned minus spent. This is what redemptions draw from.

SEE ALSO:
  - ledger.go: the append-only point ledger and total derivation
  - tracker.go: award, redemption, and dashboard operations
  - leveling/: the curve engine this package consumes
*/
package chores

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type KidID string
type ChoreID string
type RewardID string
type EntryID string
type RedemptionID string

// =============================================================================
// CHORES
// =============================================================================

// Chore is a task a kid can complete to earn points.
type Chore struct {
	ID     ChoreID
	Name   string
	Points int64 // awarded per completion
}

// =============================================================================
// REWARDS CATALOG
// =============================================================================

// RewardItem is something a kid can redeem points for.
type RewardItem struct {
	ID          RewardID
	Name        string
	Description string
	PointsCost  int64
	InStock     bool
}

// Redemption records a kid spending points on a reward.
type Redemption struct {
	ID        RedemptionID
	KidID     KidID
	RewardID  RewardID
	Points    decimal.Decimal
	Status    RedemptionStatus
	CreatedAt time.Time
}

type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "pending"
	RedemptionApproved  RedemptionStatus = "approved"
	RedemptionFulfilled RedemptionStatus = "fulfilled"
	RedemptionCancelled RedemptionStatus = "cancelled"
)

/*
tracker.go - Award, redemption, and dashboard operations

PURPOSE:
  Tracker is the seam between the point ledger and the leveling engine.
  It is the only place the engine is consulted, from exactly the two
  paths the system needs:

  CompleteChore (award path):
    Captures the lifetime total before and after the award and asks the
    engine whether a level boundary was crossed. The result carries
    LevelsGained so the caller can pick single- vs multi-level-jump
    messaging.

  Dashboard (display path):
    Feeds the current lifetime total through the engine's progress
    report for the level badge, progress bar, and points-to-next caption.

  Redeem spends from the balance only; it never consults the engine
  because spending cannot change the lifetime total.

IDEMPOTENCY:
  Award and redemption both require an idempotency key. A retried
  completion returns ErrDuplicateEntry instead of double-awarding.

SEE ALSO:
  - ledger.go: how the two totals are derived
  - leveling/progress.go: the reports returned here
*/
package chores

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartguy05/chore-app/leveling"
)

// =============================================================================
// TRACKER
// =============================================================================

// Tracker coordinates the point ledger and the leveling engine.
type Tracker struct {
	ledger *PointsLedger
	engine *leveling.Engine
	now    func() time.Time
}

func NewTracker(store Store, engine *leveling.Engine) *Tracker {
	return &Tracker{
		ledger: NewPointsLedger(store),
		engine: engine,
		now:    time.Now,
	}
}

// Ledger exposes the underlying points ledger for audit views.
func (t *Tracker) Ledger() *PointsLedger {
	return t.ledger
}

// =============================================================================
// AWARD PATH
// =============================================================================

// CompletionResult is what the caller gets back after a chore completion:
// the points awarded, the new totals, and the level transition (if any).
type CompletionResult struct {
	ChoreID        ChoreID
	PointsAwarded  int64
	Balance        decimal.Decimal
	LifetimeEarned leveling.Points
	LevelUp        leveling.LevelUpResult
}

// CompleteChore awards a chore's points to a kid and reports whether the
// award crossed one or more level boundaries. The idempotency key makes
// retries safe: a duplicate completion fails with ErrDuplicateEntry.
func (t *Tracker) CompleteChore(ctx context.Context, kidID KidID, chore Chore, idempotencyKey string) (CompletionResult, error) {
	before, err := t.lifetimeEarned(ctx, kidID)
	if err != nil {
		return CompletionResult{}, err
	}

	entry := PointEntry{
		ID:             EntryID(idempotencyKey),
		KidID:          kidID,
		Delta:          decimal.NewFromInt(chore.Points),
		Type:           EntryEarn,
		Reason:         "chore completed: " + chore.Name,
		ReferenceID:    string(chore.ID),
		IdempotencyKey: idempotencyKey,
		CreatedAt:      t.now(),
	}
	if err := t.ledger.Append(ctx, entry); err != nil {
		return CompletionResult{}, err
	}

	totals, err := t.ledger.Totals(ctx, kidID)
	if err != nil {
		return CompletionResult{}, err
	}
	after, err := leveling.PointsFromDecimal(totals.LifetimeEarned)
	if err != nil {
		return CompletionResult{}, err
	}

	return CompletionResult{
		ChoreID:        chore.ID,
		PointsAwarded:  chore.Points,
		Balance:        totals.Balance,
		LifetimeEarned: after,
		LevelUp:        t.engine.DetectLevelUp(before, after),
	}, nil
}

// =============================================================================
// REDEMPTION PATH
// =============================================================================

// Redeem spends points on a reward. The spend draws from the balance;
// the lifetime total (and therefore the level) is untouched.
func (t *Tracker) Redeem(ctx context.Context, kidID KidID, reward RewardItem, idempotencyKey string) (Redemption, error) {
	if !reward.InStock {
		return Redemption{}, ErrRewardUnavailable
	}

	totals, err := t.ledger.Totals(ctx, kidID)
	if err != nil {
		return Redemption{}, err
	}

	cost := decimal.NewFromInt(reward.PointsCost)
	if totals.Balance.LessThan(cost) {
		return Redemption{}, &InsufficientPointsError{
			KidID:     kidID,
			Available: totals.Balance,
			Requested: cost,
			Shortfall: cost.Sub(totals.Balance),
		}
	}

	entry := PointEntry{
		ID:             EntryID(idempotencyKey),
		KidID:          kidID,
		Delta:          cost.Neg(),
		Type:           EntrySpend,
		Reason:         "reward redeemed: " + reward.Name,
		ReferenceID:    string(reward.ID),
		IdempotencyKey: idempotencyKey,
		CreatedAt:      t.now(),
	}
	if err := t.ledger.Append(ctx, entry); err != nil {
		return Redemption{}, err
	}

	return Redemption{
		ID:        RedemptionID(idempotencyKey),
		KidID:     kidID,
		RewardID:  reward.ID,
		Points:    cost,
		Status:    RedemptionPending,
		CreatedAt: entry.CreatedAt,
	}, nil
}

// =============================================================================
// DISPLAY PATH
// =============================================================================

// DashboardSnapshot is what the profile view renders for one kid.
type DashboardSnapshot struct {
	KidID          KidID
	Balance        decimal.Decimal
	LifetimeEarned leveling.Points
	Progress       leveling.ProgressReport
}

// Dashboard derives a kid's current totals and progress report.
func (t *Tracker) Dashboard(ctx context.Context, kidID KidID) (DashboardSnapshot, error) {
	totals, err := t.ledger.Totals(ctx, kidID)
	if err != nil {
		return DashboardSnapshot{}, err
	}
	lifetime, err := leveling.PointsFromDecimal(totals.LifetimeEarned)
	if err != nil {
		return DashboardSnapshot{}, err
	}

	return DashboardSnapshot{
		KidID:          kidID,
		Balance:        totals.Balance,
		LifetimeEarned: lifetime,
		Progress:       t.engine.Progress(lifetime),
	}, nil
}

func (t *Tracker) lifetimeEarned(ctx context.Context, kidID KidID) (leveling.Points, error) {
	totals, err := t.ledger.Totals(ctx, kidID)
	if err != nil {
		return 0, err
	}
	return leveling.PointsFromDecimal(totals.LifetimeEarned)
}

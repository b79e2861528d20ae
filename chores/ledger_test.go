package chores_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartguy05/chore-app/chores"
	"github.com/smartguy05/chore-app/chores/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestLedger() *chores.PointsLedger {
	return chores.NewPointsLedger(store.NewMemory())
}

func entry(kid string, delta int64, entryType chores.EntryType, key string) chores.PointEntry {
	return chores.PointEntry{
		ID:             chores.EntryID(key),
		KidID:          chores.KidID(kid),
		Delta:          decimal.NewFromInt(delta),
		Type:           entryType,
		IdempotencyKey: key,
		CreatedAt:      time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

// =============================================================================
// TOTAL DERIVATION
// =============================================================================

func TestTotals_SpendReducesBalanceNotLifetime(t *testing.T) {
	// GIVEN: A kid earned 100 points and spent 30 on a reward
	// WHEN: Deriving totals
	// THEN: Balance is 70, but lifetime earned stays 100

	ledger := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, entry("kid-1", 100, chores.EntryEarn, "e-1")))
	require.NoError(t, ledger.Append(ctx, entry("kid-1", -30, chores.EntrySpend, "e-2")))

	totals, err := ledger.Totals(ctx, "kid-1")
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(70)), "balance should be 70, got %v", totals.Balance)
	assert.True(t, totals.LifetimeEarned.Equal(decimal.NewFromInt(100)), "lifetime should be 100, got %v", totals.LifetimeEarned)
}

func TestTotals_SpendReversalRestoresBalanceOnly(t *testing.T) {
	// GIVEN: A spend of 30 that was reversed
	// WHEN: Deriving totals
	// THEN: Balance is restored; lifetime earned never moved

	ledger := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, entry("kid-1", 100, chores.EntryEarn, "e-1")))
	require.NoError(t, ledger.Append(ctx, entry("kid-1", -30, chores.EntrySpend, "e-2")))
	require.NoError(t, ledger.Append(ctx, entry("kid-1", 30, chores.EntrySpendReversal, "e-3")))

	totals, err := ledger.Totals(ctx, "kid-1")
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.LifetimeEarned.Equal(decimal.NewFromInt(100)))
}

func TestTotals_AdjustmentMovesBothTotals(t *testing.T) {
	// GIVEN: An admin correction removing 20 mistakenly-awarded points
	// WHEN: Deriving totals
	// THEN: Both balance and lifetime earned drop by 20

	ledger := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, entry("kid-1", 100, chores.EntryEarn, "e-1")))
	require.NoError(t, ledger.Append(ctx, entry("kid-1", -20, chores.EntryAdjustment, "e-2")))

	totals, err := ledger.Totals(ctx, "kid-1")
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(80)))
	assert.True(t, totals.LifetimeEarned.Equal(decimal.NewFromInt(80)))
}

func TestTotals_UnknownKid_ZeroTotals(t *testing.T) {
	totals, err := newTestLedger().Totals(context.Background(), "nobody")
	require.NoError(t, err)
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, totals.LifetimeEarned.IsZero())
}

// =============================================================================
// APPEND-ONLY / IDEMPOTENCY
// =============================================================================

func TestAppend_DuplicateIdempotencyKey_Rejected(t *testing.T) {
	// GIVEN: An entry already recorded under a key
	// WHEN: Appending again with the same key (a retry)
	// THEN: The second append fails and points are not double-counted

	ledger := newTestLedger()
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, entry("kid-1", 50, chores.EntryEarn, "same-key")))

	err := ledger.Append(ctx, entry("kid-1", 50, chores.EntryEarn, "same-key"))
	assert.ErrorIs(t, err, chores.ErrDuplicateEntry)
	assert.True(t, chores.IsClientError(err))

	totals, err := ledger.Totals(ctx, "kid-1")
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(50)))
}

func TestEntries_PreserveAppendOrder(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	keys := []string{"e-1", "e-2", "e-3"}
	for _, k := range keys {
		require.NoError(t, ledger.Append(ctx, entry("kid-1", 10, chores.EntryEarn, k)))
	}

	entries, err := ledger.Entries(ctx, "kid-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, k := range keys {
		assert.Equal(t, chores.EntryID(k), entries[i].ID)
	}
}

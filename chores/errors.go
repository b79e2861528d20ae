/*
errors.go - Centralized error types for the chores domain

PURPOSE:
  All domain error types in one place. Callers match sentinels with
  errors.Is and unwrap details with errors.As:

    var ipe *chores.InsufficientPointsError
    if errors.As(err, &ipe) {
        // show ipe.Shortfall to the user
    }

SEE ALSO:
  - ledger.go: returns ErrDuplicateEntry
  - tracker.go: returns InsufficientPointsError, ErrRewardUnavailable
*/
package chores

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrDuplicateEntry is returned when a ledger entry with the same
	// idempotency key already exists. Expected on retries.
	ErrDuplicateEntry = errors.New("duplicate ledger entry")

	// ErrInsufficientPoints is returned when a redemption exceeds the
	// kid's spendable balance.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrRewardUnavailable is returned when redeeming an out-of-stock reward.
	ErrRewardUnavailable = errors.New("reward unavailable")

	// ErrKidNotFound is returned when a referenced kid has no ledger.
	ErrKidNotFound = errors.New("kid not found")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InsufficientPointsError provides details about a balance shortage.
type InsufficientPointsError struct {
	KidID     KidID
	Available decimal.Decimal
	Requested decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: available %v, requested %v, shortfall %v",
		e.Available, e.Requested, e.Shortfall)
}

func (e *InsufficientPointsError) Unwrap() error {
	return ErrInsufficientPoints
}

// IsClientError returns true if the error is due to invalid caller input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInsufficientPoints) ||
		errors.Is(err, ErrDuplicateEntry) ||
		errors.Is(err, ErrRewardUnavailable)
}

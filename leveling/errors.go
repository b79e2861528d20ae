/*
errors.go - Error types for the leveling engine

PURPOSE:
  The engine performs no I/O, so its whole error surface is input and
  configuration validation. Two sentinel categories:

  ErrInvalidPoints - a total that is not a finite whole number (NaN,
    infinity, fractional). Rejected rather than truncated so upstream
    bookkeeping bugs surface instead of being silently floored away.

  ErrBadCurve - curve parameters that would break the engine's
    invariants (non-terminating loop, zero-cost steps).

USAGE:
  Callers match with errors.Is:

    if errors.Is(err, leveling.ErrInvalidPoints) { ... }

  or unwrap details with errors.As:

    var ipe *leveling.InvalidPointsError
    if errors.As(err, &ipe) { log.Printf("bad total: %s", ipe.Value) }

SEE ALSO:
  - points.go: validating constructors that return these errors
  - config.go: Config.Validate
*/
package leveling

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPoints is returned when a point total is not a finite
	// whole number.
	ErrInvalidPoints = errors.New("invalid point total")

	// ErrBadCurve is returned when curve parameters fail validation.
	ErrBadCurve = errors.New("invalid curve configuration")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidPointsError reports a point total that failed validation.
type InvalidPointsError struct {
	Value  string // textual form of the rejected input
	Reason string // e.g. "not a number", "fractional", "out of range"
}

func (e *InvalidPointsError) Error() string {
	return fmt.Sprintf("invalid point total %q: %s", e.Value, e.Reason)
}

func (e *InvalidPointsError) Unwrap() error {
	return ErrInvalidPoints
}

// CurveConfigError reports a curve parameter that failed validation.
type CurveConfigError struct {
	Field  string
	Reason string
}

func (e *CurveConfigError) Error() string {
	return fmt.Sprintf("invalid curve configuration: %s %s", e.Field, e.Reason)
}

func (e *CurveConfigError) Unwrap() error {
	return ErrBadCurve
}

// IsInvalidInput returns true if the error is due to bad caller input
// rather than engine misconfiguration.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidPoints)
}

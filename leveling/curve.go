/*
curve.go - Step costs, cumulative costs, and level derivation

PURPOSE:
  Implements the three primitive curve operations:
    StepCost(L)           points to advance from level L to L+1
    CumulativeRequired(L) points to have reached level L from zero
    LevelFromPoints(T)    level implied by a lifetime point total

KEY INVARIANTS:
  1. StepCost is strictly increasing for level >= 1 (Growth > 1 enforced
     at construction).
  2. CumulativeRequired(1) = 0, and CumulativeRequired is the running sum
     of integer step costs. Summing floored integers is deliberate: a
     floored closed-form sum would drift from the per-step floors.
  3. For every total T >= 0, with L = LevelFromPoints(T):
       CumulativeRequired(L) <= T < CumulativeRequired(L+1)
  4. LevelFromPoints is monotonically non-decreasing in T.

OVERFLOW:
  Step costs grow geometrically, so they exceed int64 within ~100 levels
  on the default curve. Conversions and sums saturate at MaxInt64 instead
  of wrapping; a saturated step cost always exceeds any real total, which
  also guarantees loop termination.

SEE ALSO:
  - progress.go: user-facing reports built on these primitives
*/
package leveling

import "math"

// maxPoints is the saturation ceiling for curve arithmetic.
const maxPoints = Points(math.MaxInt64)

// float64(MaxInt64) rounds up to 2^63; anything at or above it saturates.
const maxPointsFloat = float64(math.MaxInt64)

// =============================================================================
// STEP COST
// =============================================================================

// StepCost returns the points required to advance from level to level+1:
// floor(BasePoints * Growth^(level-1)). The rounding rule is floor, not
// round: floor(50 * 1.5^2) = floor(112.5) = 112.
//
// Only defined in the cumulative sense for level >= 1; callers guard.
func (e *Engine) StepCost(level Level) Points {
	cost := math.Floor(float64(e.cfg.BasePoints) * math.Pow(e.cfg.Growth, float64(level-1)))
	if cost >= maxPointsFloat {
		return maxPoints
	}
	return Points(cost)
}

// =============================================================================
// CUMULATIVE COST
// =============================================================================

// CumulativeRequired returns the total points needed to have reached the
// given level from zero. By definition level 1 (and below) costs nothing.
func (e *Engine) CumulativeRequired(level Level) Points {
	if level <= 1 {
		return 0
	}
	var sum Points
	for l := Level(1); l < level; l++ {
		sum = satAdd(sum, e.StepCost(l))
		if sum == maxPoints {
			break // saturated; further steps cannot change the result
		}
	}
	return sum
}

// =============================================================================
// LEVEL DERIVATION
// =============================================================================

// LevelFromPoints returns the level implied by a lifetime point total.
//
// Negative totals clamp to level 1: callers may transiently compute
// negative deltas, and the engine floors rather than erroring.
//
// The loop consumes one step cost per iteration and exits as soon as the
// next advancement is unaffordable. Geometric growth bounds it at
// O(log total); MaxLevel caps it outright as a backstop.
func (e *Engine) LevelFromPoints(total Points) Level {
	if total < 0 {
		return 1
	}
	level := Level(1)
	remaining := total
	for level < e.cfg.MaxLevel {
		cost := e.StepCost(level)
		if remaining < cost {
			break
		}
		remaining -= cost
		level++
	}
	return level
}

// satAdd adds two non-negative point values, saturating at MaxInt64.
func satAdd(a, b Points) Points {
	if a > maxPoints-b {
		return maxPoints
	}
	return a + b
}

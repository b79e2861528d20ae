/*
points.go - Validating constructors for point totals

PURPOSE:
  The engine operates on whole-number totals, but totals arrive from the
  outside world in looser shapes: float64 from decoded JSON, and
  decimal.Decimal from ledger balance sums. These constructors are the
  boundary where those shapes are proven to be exact integers.

  Rejecting instead of truncating is deliberate: a fractional or NaN
  total means the upstream point bookkeeping is broken, and flooring it
  here would mask that bug.

SEE ALSO:
  - errors.go: InvalidPointsError
  - chores/ledger.go: decimal balance sums fed through PointsFromDecimal
*/
package leveling

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// FLOAT BOUNDARY - JSON-decoded totals
// =============================================================================

// PointsFromFloat converts a float64 total to Points, rejecting NaN,
// infinities, fractional values, and values outside the int64 range.
func PointsFromFloat(v float64) (Points, error) {
	if math.IsNaN(v) {
		return 0, &InvalidPointsError{Value: "NaN", Reason: "not a number"}
	}
	if math.IsInf(v, 0) {
		return 0, &InvalidPointsError{Value: formatFloat(v), Reason: "not finite"}
	}
	if v != math.Trunc(v) {
		return 0, &InvalidPointsError{Value: formatFloat(v), Reason: "fractional"}
	}
	if v >= maxPointsFloat || v < float64(math.MinInt64) {
		return 0, &InvalidPointsError{Value: formatFloat(v), Reason: "out of range"}
	}
	return Points(v), nil
}

// =============================================================================
// DECIMAL BOUNDARY - Ledger balance sums
// =============================================================================

var (
	decimalMaxPoints = decimal.NewFromInt(math.MaxInt64)
	decimalMinPoints = decimal.NewFromInt(math.MinInt64)
)

// PointsFromDecimal converts a decimal total to Points, rejecting
// fractional values and values outside the int64 range.
func PointsFromDecimal(d decimal.Decimal) (Points, error) {
	if !d.IsInteger() {
		return 0, &InvalidPointsError{Value: d.String(), Reason: "fractional"}
	}
	if d.GreaterThan(decimalMaxPoints) || d.LessThan(decimalMinPoints) {
		return 0, &InvalidPointsError{Value: d.String(), Reason: "out of range"}
	}
	return Points(d.IntPart()), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

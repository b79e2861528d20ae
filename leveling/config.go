/*
Package leveling converts accumulated chore points into levels and
progress information.

PURPOSE:
  This package is the single source of truth for the level curve. Both the
  award path (chore completion detecting level-ups) and the display path
  (dashboard progress bars) import this one engine, so the curve can never
  drift between the two — historically the same formula lived in two places
  and had to be kept in sync by hand.

THE CURVE:
  Advancing from level L to L+1 costs floor(BasePoints * Growth^(L-1))
  points. With the default curve (50 points, 1.5x growth):

    level 1 -> 2:  50 points   (cumulative   0 at level 1)
    level 2 -> 3:  75 points   (cumulative  50)
    level 3 -> 4: 112 points   (cumulative 125)
    level 4 -> 5: 168 points   (cumulative 237)

  The rounding rule is floor, applied per step. Cumulative costs are sums
  of already-floored integer steps, never a floored closed form.

DESIGN PRINCIPLES:
  1. Purity: every operation is a deterministic function of its inputs.
     No I/O, no mutable state, safe for concurrent use without locks.
  2. Totality: valid integer inputs never fail. Negative totals clamp to
     level 1 (upstream deltas can transiently go negative).
  3. Validated boundaries: totals arriving as float64 or decimal must be
     exact integers; NaN and fractional values are rejected, not truncated.

USAGE:
  engine := leveling.Default()
  report := engine.Progress(total)
  result := engine.DetectLevelUp(before, after)

SEE ALSO:
  - curve.go: step cost, cumulative cost, level derivation
  - progress.go: progress reports and level-up detection
  - chores/tracker.go: the two callers of this engine
*/
package leveling

// =============================================================================
// CORE TYPES
// =============================================================================

// Points is a whole number of chore points. Totals passed to the engine are
// lifetime-earned totals and are expected to be non-negative.
type Points int64

// Level is a derived milestone, always >= 1. Levels are never stored
// authoritatively; they are recomputed from the point total.
type Level int

// =============================================================================
// CONFIGURATION - The only tunable surface of the engine
// =============================================================================

// Default curve parameters.
const (
	DefaultBasePoints = 50
	DefaultGrowth     = 1.5
	DefaultMaxLevel   = 1000
)

// Config parameterizes the level curve.
//
// BasePoints is the cost of the first advancement (level 1 -> 2).
// Growth is the per-level multiplier applied to that cost.
// MaxLevel is a sanity ceiling: it bounds the level-derivation loop so a
// misconfigured curve surfaces as a capped level instead of a hang.
type Config struct {
	BasePoints int64
	Growth     float64
	MaxLevel   Level
}

// DefaultConfig returns the reference curve: 50 base points, 1.5x growth.
func DefaultConfig() Config {
	return Config{
		BasePoints: DefaultBasePoints,
		Growth:     DefaultGrowth,
		MaxLevel:   DefaultMaxLevel,
	}
}

// Validate checks that the curve terminates and produces positive step costs.
// Growth must exceed 1 so step costs grow without bound; BasePoints must be
// at least 1 so no step ever costs zero points.
func (c Config) Validate() error {
	if c.BasePoints < 1 {
		return &CurveConfigError{Field: "BasePoints", Reason: "must be >= 1"}
	}
	if c.Growth <= 1 {
		return &CurveConfigError{Field: "Growth", Reason: "must be > 1"}
	}
	if c.MaxLevel < 2 {
		return &CurveConfigError{Field: "MaxLevel", Reason: "must be >= 2"}
	}
	return nil
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine computes levels and progress from point totals. It is immutable
// after construction and safe for unsynchronized concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine from the given curve, rejecting configurations
// that would break the curve invariants (see Config.Validate).
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Default returns an engine with the reference curve. It cannot fail.
func Default() *Engine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(err) // DefaultConfig always validates
	}
	return e
}

// Config returns the curve this engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

/*
progress.go - Progress reports and level-up detection

PURPOSE:
  The two user-facing views of the curve:

  Progress(total):
    Where does this total sit inside its current level? Drives the
    dashboard progress bar, level badge, and "N points to next level"
    caption.

  DetectLevelUp(before, after):
    Did an award cross one or more level boundaries? Drives the
    congratulations flow after a chore is completed. A single award can
    cross several boundaries at once; LevelsGained surfaces that so the
    caller can show different messaging for a multi-level jump.

SEE ALSO:
  - curve.go: the primitives these reports are assembled from
  - chores/tracker.go: the award and dashboard callers
*/
package leveling

// =============================================================================
// PROGRESS REPORT
// =============================================================================

// ProgressReport describes where a point total sits within its current
// level's range. All fields are derived; nothing here is stored.
type ProgressReport struct {
	// CurrentLevel is the level implied by TotalPoints.
	CurrentLevel Level `json:"currentLevel"`

	// TotalPoints echoes the input total, even when negative.
	TotalPoints Points `json:"totalPoints"`

	// PointsInLevel is how far into the current level the total sits.
	PointsInLevel Points `json:"pointsInCurrentLevel"`

	// PointsForLevel is the full cost of the current level (its step cost).
	PointsForLevel Points `json:"pointsNeededForNextLevel"`

	// Percent is floor(100 * PointsInLevel / PointsForLevel), in 0..100.
	Percent int `json:"progressPercentage"`

	// PointsToNext is the remaining cost to reach the next level.
	PointsToNext Points `json:"pointsToNextLevel"`
}

// Progress reports how far into its current level a point total sits.
//
// Negative totals report level 1 with zero progress: the total is echoed
// as given, but the within-level position clamps to the bottom of level 1.
func (e *Engine) Progress(total Points) ProgressReport {
	effective := total
	if effective < 0 {
		effective = 0
	}

	level := e.LevelFromPoints(effective)
	floor := e.CumulativeRequired(level)
	ceiling := e.CumulativeRequired(level + 1)

	inLevel := effective - floor
	forLevel := ceiling - floor

	// forLevel is >= 1 for any validated curve, but a zero denominator
	// must still mean "level complete" rather than a division panic.
	percent := 100
	switch {
	case forLevel <= 0:
	case inLevel > maxPoints/100:
		// 100*inLevel would overflow; divide first. Only reachable at
		// saturated step costs, where forLevel > 100.
		percent = int(inLevel / (forLevel / 100))
	default:
		percent = int(100 * inLevel / forLevel)
	}

	return ProgressReport{
		CurrentLevel:   level,
		TotalPoints:    total,
		PointsInLevel:  inLevel,
		PointsForLevel: forLevel,
		Percent:        percent,
		PointsToNext:   forLevel - inLevel,
	}
}

// =============================================================================
// LEVEL-UP DETECTION
// =============================================================================

// LevelUpResult records the level transition implied by a point award.
type LevelUpResult struct {
	// LeveledUp is true when NewLevel exceeds OldLevel.
	LeveledUp bool `json:"leveledUp"`

	// OldLevel is the level implied by the pre-award total.
	OldLevel Level `json:"oldLevel"`

	// NewLevel is the level implied by the post-award total.
	NewLevel Level `json:"newLevel"`

	// LevelsGained is NewLevel - OldLevel. Greater than 1 when a single
	// award crosses several level boundaries.
	LevelsGained int `json:"levelsGained"`
}

// DetectLevelUp compares the levels implied by two point totals, typically
// captured immediately before and after an award.
func (e *Engine) DetectLevelUp(before, after Points) LevelUpResult {
	oldLevel := e.LevelFromPoints(before)
	newLevel := e.LevelFromPoints(after)
	return LevelUpResult{
		LeveledUp:    newLevel > oldLevel,
		OldLevel:     oldLevel,
		NewLevel:     newLevel,
		LevelsGained: int(newLevel - oldLevel),
	}
}

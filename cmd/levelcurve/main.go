/*
main.go - Level curve inspection tool

PURPOSE:
  Prints the level curve for a given configuration so curve changes can
  be evaluated before rolling them out. Useful when tuning
  LEVELING_BASE_POINTS / LEVELING_GROWTH: run the tool with candidate
  values and eyeball how fast levels get expensive.

COMMAND-LINE FLAGS:
  -base    points for the first advancement (default: 50)
  -growth  per-level multiplier (default: 1.5)
  -levels  how many levels to print (default: 15)
  -points  optional total; prints its progress report

EXAMPLES:
  # Reference curve
  ./levelcurve

  # Candidate curve, first 25 levels
  ./levelcurve -base=100 -growth=1.3 -levels=25

  # Where does 750 points land?
  ./levelcurve -points=750
*/
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/smartguy05/chore-app/leveling"
)

func main() {
	base := flag.Int64("base", leveling.DefaultBasePoints, "points for the first advancement")
	growth := flag.Float64("growth", leveling.DefaultGrowth, "per-level multiplier")
	levels := flag.Int("levels", 15, "levels to print")
	points := flag.Int64("points", -1, "total points to report progress for")
	flag.Parse()

	engine, err := leveling.NewEngine(leveling.Config{
		BasePoints: *base,
		Growth:     *growth,
		MaxLevel:   leveling.DefaultMaxLevel,
	})
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}

	fmt.Printf("Curve: base=%d growth=%g\n\n", *base, *growth)
	fmt.Printf("%8s %12s %12s\n", "level", "step cost", "cumulative")
	for l := leveling.Level(1); l <= leveling.Level(*levels); l++ {
		fmt.Printf("%8d %12d %12d\n", l, engine.StepCost(l), engine.CumulativeRequired(l))
	}

	if *points >= 0 {
		report := engine.Progress(leveling.Points(*points))
		fmt.Printf("\n%d points -> level %d (%d/%d, %d%%, %d to next)\n",
			report.TotalPoints, report.CurrentLevel, report.PointsInLevel,
			report.PointsForLevel, report.Percent, report.PointsToNext)
	}
}

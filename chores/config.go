/*
config.go - Environment-driven curve tuning

PURPOSE:
  The curve constants are the only configuration surface of the leveling
  engine, and they must be tunable without code edits. Both halves of the
  system (the award path and the display path) build their engine through
  this one loader, so the pair can never drift apart.

ENVIRONMENT:
  LEVELING_BASE_POINTS  cost of the first advancement (default: 50)
  LEVELING_GROWTH       per-level multiplier (default: 1.5)
  LEVELING_MAX_LEVEL    level ceiling (default: 1000)

  Misconfigured values (growth <= 1, base < 1) fail at startup with
  leveling.ErrBadCurve rather than at request time.
*/
package chores

import (
	"github.com/caarlos0/env/v11"
	"github.com/smartguy05/chore-app/leveling"
)

// CurveSettings mirrors leveling.Config with environment bindings.
type CurveSettings struct {
	BasePoints int64   `env:"LEVELING_BASE_POINTS" envDefault:"50"`
	Growth     float64 `env:"LEVELING_GROWTH" envDefault:"1.5"`
	MaxLevel   int     `env:"LEVELING_MAX_LEVEL" envDefault:"1000"`
}

// Config converts the settings into an engine configuration.
func (s CurveSettings) Config() leveling.Config {
	return leveling.Config{
		BasePoints: s.BasePoints,
		Growth:     s.Growth,
		MaxLevel:   leveling.Level(s.MaxLevel),
	}
}

// EngineFromEnv builds a leveling engine from LEVELING_* environment
// variables, falling back to the reference curve.
func EngineFromEnv() (*leveling.Engine, error) {
	var settings CurveSettings
	if err := env.Parse(&settings); err != nil {
		return nil, err
	}
	return leveling.NewEngine(settings.Config())
}

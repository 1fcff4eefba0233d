// Package markets derives fair probabilities for every supported market from
// an ensemble outcome and its Poisson goal model.
package markets

import (
	"fmt"
	"math"

	"github.com/yourusername/clever-tickets/internal/goalmodel"
	"github.com/yourusername/clever-tickets/internal/models"
)

// clampTolerance is the floating drift tolerated before a derived value is rejected
const clampTolerance = 1e-9

// Engine derives market tables with a fixed calibration
type Engine struct {
	calibration goalmodel.Calibration
}

// NewEngine creates a derivation engine
func NewEngine(cal goalmodel.Calibration) *Engine {
	return &Engine{calibration: cal}
}

// Calibration returns the engine calibration
func (e *Engine) Calibration() goalmodel.Calibration {
	return e.calibration
}

// Derive validates the outcome, computes its goal model and returns the full market table
func (e *Engine) Derive(matchID string, outcome models.EnsembleOutcome) (*Table, error) {
	if err := outcome.Validate(); err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}
	gm, err := goalmodel.FromOutcome(outcome, e.calibration)
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}
	return e.DeriveWithGoals(matchID, outcome, gm)
}

// DeriveWithGoals builds the market table from an explicit goal model
func (e *Engine) DeriveWithGoals(matchID string, outcome models.EnsembleOutcome, gm models.GoalModel) (*Table, error) {
	if err := outcome.Validate(); err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}
	if err := gm.Validate(); err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}

	table := newTable(matchID, outcome, gm)
	b := &builder{table: table}

	deriveResult(b, outcome)
	deriveGoals(b, gm, e.calibration)
	deriveScorelines(b, gm)
	deriveProps(b, outcome, gm, e.calibration)

	if b.err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, b.err)
	}
	if err := verifyClosure(table); err != nil {
		return nil, fmt.Errorf("match %s: %w", matchID, err)
	}
	return table, nil
}

// builder records derived probabilities, keeping the first range failure
type builder struct {
	table *Table
	err   error
}

func (b *builder) set(key models.MarketKey, p float64) {
	if b.err != nil {
		return
	}
	checked, err := checkProbability(key, p)
	if err != nil {
		b.err = err
		return
	}
	b.table.Probabilities[key] = models.NewMarketProbability(key, checked)
}

// checkProbability clamps floating drift and rejects anything else outside [0,1]
func checkProbability(key models.MarketKey, p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, &models.RangeError{Key: key, Value: p}
	}
	if p < -clampTolerance || p > 1+clampTolerance {
		return 0, &models.RangeError{Key: key, Value: p}
	}
	return math.Min(1, math.Max(0, p)), nil
}

// verifyClosure checks that every exclusive market sums to 1
func verifyClosure(table *Table) error {
	sums := make(map[models.Market]float64)
	for _, key := range models.Keys() {
		def, _ := models.Lookup(key)
		if !def.Exclusive {
			continue
		}
		mp, ok := table.Probabilities[key]
		if !ok {
			continue
		}
		sums[def.Market] += mp.Probability
	}
	for market, sum := range sums {
		if math.Abs(sum-1) > models.ProbabilityTolerance {
			return fmt.Errorf("%w: market %s sums to %v", models.ErrOutOfRange, market, sum)
		}
	}
	return nil
}

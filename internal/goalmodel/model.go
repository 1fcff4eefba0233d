// Package goalmodel converts ensemble result probabilities into expected goals
// and Poisson scoreline distributions.
package goalmodel

import (
	"math"

	"github.com/yourusername/clever-tickets/internal/models"
)

// Calibration holds the fixed scaling constants of the goal model and the
// derived prop markets
type Calibration struct {
	HomeFactor     float64 `mapstructure:"home_factor" json:"home_factor" validate:"gt=0"`
	AwayFactor     float64 `mapstructure:"away_factor" json:"away_factor" validate:"gt=0"`
	CornersFactor  float64 `mapstructure:"corners_factor" json:"corners_factor" validate:"gt=0"`
	FirstHalfShare float64 `mapstructure:"first_half_share" json:"first_half_share" validate:"gt=0,lt=1"`
	CardsBase      float64 `mapstructure:"cards_base" json:"cards_base" validate:"gte=0"`
	CardsTension   float64 `mapstructure:"cards_tension" json:"cards_tension" validate:"gte=0"`
}

// DefaultCalibration returns the documented calibration
func DefaultCalibration() Calibration {
	return Calibration{
		HomeFactor:     2.1,
		AwayFactor:     1.8,
		CornersFactor:  3.2,
		FirstHalfShare: 0.45,
		CardsBase:      3.4,
		CardsTension:   1.6,
	}
}

// FromOutcome derives expected goals from an ensemble outcome
func FromOutcome(outcome models.EnsembleOutcome, cal Calibration) (models.GoalModel, error) {
	if math.IsNaN(outcome.HomeWin) || outcome.HomeWin < 0 {
		return models.GoalModel{}, models.NewValidationError("home_win", outcome.HomeWin, "must be a non-negative number")
	}
	if math.IsNaN(outcome.AwayWin) || outcome.AwayWin < 0 {
		return models.GoalModel{}, models.NewValidationError("away_win", outcome.AwayWin, "must be a non-negative number")
	}

	gm := models.GoalModel{
		LambdaHome: outcome.HomeWin * cal.HomeFactor,
		LambdaAway: outcome.AwayWin * cal.AwayFactor,
	}
	if err := gm.Validate(); err != nil {
		return models.GoalModel{}, err
	}
	return gm, nil
}

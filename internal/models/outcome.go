package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// ProbabilityTolerance is the closure tolerance for mutually exclusive outcomes
const ProbabilityTolerance = 1e-3

var outcomeValidator = validator.New()

// Outcome is a full-time match result
type Outcome string

const (
	OutcomeHomeWin Outcome = "HOME_WIN"
	OutcomeDraw    Outcome = "DRAW"
	OutcomeAwayWin Outcome = "AWAY_WIN"
)

// EnsembleOutcome is the blended win/draw/loss prediction supplied by the upstream model
type EnsembleOutcome struct {
	HomeWin           float64 `json:"home_win" validate:"gte=0,lte=1"`
	Draw              float64 `json:"draw" validate:"gte=0,lte=1"`
	AwayWin           float64 `json:"away_win" validate:"gte=0,lte=1"`
	Confidence        float64 `json:"confidence" validate:"gte=0,lte=100"`
	ConsensusStrength float64 `json:"consensus_strength" validate:"gte=0,lte=100"`
}

// Validate checks field bounds and that the three result probabilities sum to 1
func (o EnsembleOutcome) Validate() error {
	if err := outcomeValidator.Struct(o); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			value, _ := fe.Value().(float64)
			return NewValidationError(fe.Field(), value, fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param()))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sum := o.HomeWin + o.Draw + o.AwayWin
	if math.Abs(sum-1) > ProbabilityTolerance {
		return NewValidationError("HomeWin+Draw+AwayWin", sum, "result probabilities must sum to 1")
	}
	return nil
}

// Predicted returns the most likely result. Home wins every tie; draw
// beats away only when strictly greater.
func (o EnsembleOutcome) Predicted() Outcome {
	switch {
	case o.HomeWin >= o.Draw && o.HomeWin >= o.AwayWin:
		return OutcomeHomeWin
	case o.Draw > o.AwayWin:
		return OutcomeDraw
	default:
		return OutcomeAwayWin
	}
}

// Probability returns the probability the model assigns to a result
func (o EnsembleOutcome) Probability(outcome Outcome) float64 {
	switch outcome {
	case OutcomeHomeWin:
		return o.HomeWin
	case OutcomeDraw:
		return o.Draw
	case OutcomeAwayWin:
		return o.AwayWin
	}
	return 0
}

// Reliability returns the model confidence on a 0-1 scale
func (o EnsembleOutcome) Reliability() float64 {
	return o.Confidence / 100
}

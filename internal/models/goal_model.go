package models

import "math"

// GoalModel holds expected-goal rates for each side
type GoalModel struct {
	LambdaHome float64 `json:"lambda_home"`
	LambdaAway float64 `json:"lambda_away"`
}

// TotalXG returns the expected total goals of the match
func (g GoalModel) TotalXG() float64 {
	return g.LambdaHome + g.LambdaAway
}

// Validate rejects negative or non-finite rates
func (g GoalModel) Validate() error {
	if !validRate(g.LambdaHome) {
		return NewValidationError("lambda_home", g.LambdaHome, "expected goals must be finite and non-negative")
	}
	if !validRate(g.LambdaAway) {
		return NewValidationError("lambda_away", g.LambdaAway, "expected goals must be finite and non-negative")
	}
	return nil
}

func validRate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ticket is an immutable multi-selection bet built for one strategy
type Ticket struct {
	ID                  uuid.UUID       `json:"id"`
	Strategy            string          `json:"strategy"`
	Selections          []Selection     `json:"selections"`
	CombinedOdds        float64         `json:"combined_odds"`
	CombinedProbability float64         `json:"combined_probability"`
	CombinedConfidence  float64         `json:"combined_confidence"`
	KellyFraction       float64         `json:"kelly_fraction"`
	KellyCapped         bool            `json:"kelly_capped"`
	Bankroll            decimal.Decimal `json:"bankroll"`
	Stake               decimal.Decimal `json:"stake"`
	PotentialReturn     decimal.Decimal `json:"potential_return"`
	PotentialProfit     decimal.Decimal `json:"potential_profit"`
}

// Legs returns the number of selections on the ticket
func (t *Ticket) Legs() int {
	return len(t.Selections)
}

// Primary returns the first leg
func (t *Ticket) Primary() Selection {
	if len(t.Selections) == 0 {
		return Selection{}
	}
	return t.Selections[0]
}

// ExpectedValue returns the model expected profit per unit staked
func (t *Ticket) ExpectedValue() float64 {
	if t.CombinedOdds <= 1 {
		return 0
	}
	return t.CombinedProbability*t.CombinedOdds - 1
}

// GetROI returns the potential return on investment percentage
func (t *Ticket) GetROI() float64 {
	if t.Stake.IsZero() {
		return 0
	}
	return t.PotentialProfit.Div(t.Stake).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// Package strategy holds the fixed betting strategies and ranks candidate
// selections against them.
package strategy

import (
	"fmt"
	"strings"

	"github.com/yourusername/clever-tickets/internal/models"
)

// Strategy names
const (
	Conservative = "conservative"
	Balanced     = "balanced"
	Aggressive   = "aggressive"
	Value        = "value"
	Combo        = "combo"
)

// BettingStrategy is an immutable risk profile
type BettingStrategy struct {
	Name               string          `json:"name"`
	MaxOdds            float64         `json:"max_odds"`
	MinConfidence      float64         `json:"min_confidence"`
	MaxSelections      int             `json:"max_selections"`
	PreferredMarkets   []models.Market `json:"preferred_markets"`
	BankrollPercentage float64         `json:"bankroll_percentage"`
	// RequireValue keeps only candidates priced above fair odds by a bookmaker
	RequireValue bool `json:"require_value"`
}

var presets = map[string]BettingStrategy{
	Conservative: {
		Name:          Conservative,
		MaxOdds:       2.5,
		MinConfidence: 0.75,
		MaxSelections: 3,
		PreferredMarkets: []models.Market{
			models.MarketDoubleChance,
			models.TotalGoalsMarket(3),
			models.TotalGoalsMarket(1),
			models.MarketMatchResult,
		},
		BankrollPercentage: 0.02,
	},
	Balanced: {
		Name:          Balanced,
		MaxOdds:       3.5,
		MinConfidence: 0.6,
		MaxSelections: 3,
		PreferredMarkets: []models.Market{
			models.MarketMatchResult,
			models.TotalGoalsMarket(2),
			models.MarketBTTS,
			models.MarketAsianHandicap,
		},
		BankrollPercentage: 0.03,
	},
	Aggressive: {
		Name:          Aggressive,
		MaxOdds:       6.0,
		MinConfidence: 0.35,
		MaxSelections: 3,
		PreferredMarkets: []models.Market{
			models.MarketAsianHandicap,
			models.TotalGoalsMarket(2),
			models.MarketBTTS,
			models.MarketFirstGoal,
		},
		BankrollPercentage: 0.05,
	},
	Value: {
		Name:          Value,
		MaxOdds:       5.0,
		MinConfidence: 0.4,
		MaxSelections: 2,
		PreferredMarkets: []models.Market{
			models.MarketMatchResult,
			models.TotalGoalsMarket(2),
			models.MarketBTTS,
			models.MarketAsianHandicap,
		},
		BankrollPercentage: 0.04,
		RequireValue:       true,
	},
	Combo: {
		Name:          Combo,
		MaxOdds:       4.0,
		MinConfidence: 0.5,
		MaxSelections: 3,
		PreferredMarkets: []models.Market{
			models.MarketMatchResult,
			models.MarketDoubleChance,
			models.TotalGoalsMarket(2),
			models.MarketBTTS,
			models.CornersMarket(9),
		},
		BankrollPercentage: 0.025,
	},
}

// Names returns the strategy names in a fixed order
func Names() []string {
	return []string{Conservative, Balanced, Aggressive, Value, Combo}
}

// Lookup returns a copy of the named strategy
func Lookup(name string) (BettingStrategy, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return BettingStrategy{}, fmt.Errorf("%w: %q (expected one of %s)", models.ErrUnknownStrategy, name, strings.Join(Names(), ", "))
	}
	return s.clone(), nil
}

// All returns copies of every strategy in Names order
func All() []BettingStrategy {
	all := make([]BettingStrategy, 0, len(presets))
	for _, name := range Names() {
		all = append(all, presets[name].clone())
	}
	return all
}

// PreferenceRank returns the position of a market in the preferred list,
// or len(PreferredMarkets) when it is not preferred
func (s BettingStrategy) PreferenceRank(market models.Market) int {
	for i, preferred := range s.PreferredMarkets {
		if preferred == market {
			return i
		}
	}
	return len(s.PreferredMarkets)
}

// Accepts reports whether a selection passes the strategy thresholds
func (s BettingStrategy) Accepts(sel models.Selection) bool {
	if sel.Confidence < s.MinConfidence {
		return false
	}
	if sel.Odds > s.MaxOdds {
		return false
	}
	if s.RequireValue && !sel.HasValue() {
		return false
	}
	return true
}

func (s BettingStrategy) clone() BettingStrategy {
	c := s
	c.PreferredMarkets = append([]models.Market(nil), s.PreferredMarkets...)
	return c
}

// Package odds converts fair probabilities into prices and compares them
// against bookmaker odds to find value.
package odds

import (
	"fmt"
	"math"
	"sort"

	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/models"
)

// FairOdds returns 1/p, or false when p is zero and no fair price exists
func FairOdds(probability float64) (float64, bool) {
	if probability <= 0 || math.IsNaN(probability) {
		return models.NoFairOdds, false
	}
	return 1 / probability, true
}

// Edge returns market/fair - 1
func Edge(marketOdds, fairOdds float64) float64 {
	return marketOdds/fairOdds - 1
}

// Evaluation is the outcome of pricing one market entry
type Evaluation struct {
	Key           models.MarketKey `json:"market"`
	Probability   float64          `json:"probability"`
	FairOdds      float64          `json:"fair_odds,omitempty"`
	HasFairOdds   bool             `json:"has_fair_odds"`
	MarketOdds    float64          `json:"market_odds,omitempty"`
	HasMarketOdds bool             `json:"has_market_odds"`
	Edge          float64          `json:"edge,omitempty"`
	IsValue       bool             `json:"is_value"`
}

// Evaluator flags value bets above a minimum edge
type Evaluator struct {
	minEdge float64
}

// NewEvaluator creates an evaluator. minEdge must be finite and non-negative.
func NewEvaluator(minEdge float64) (*Evaluator, error) {
	if math.IsNaN(minEdge) || math.IsInf(minEdge, 0) || minEdge < 0 {
		return nil, models.NewValidationError("min_edge", minEdge, "must be finite and non-negative")
	}
	return &Evaluator{minEdge: minEdge}, nil
}

// MinEdge returns the value threshold
func (e *Evaluator) MinEdge() float64 {
	return e.minEdge
}

// Evaluate prices a market entry against optional bookmaker odds
func (e *Evaluator) Evaluate(mp models.MarketProbability, marketOdds float64, hasMarketOdds bool) Evaluation {
	eval := Evaluation{
		Key:           mp.Key,
		Probability:   mp.Probability,
		MarketOdds:    marketOdds,
		HasMarketOdds: hasMarketOdds,
	}
	eval.FairOdds, eval.HasFairOdds = FairOdds(mp.Probability)
	if !eval.HasFairOdds || !hasMarketOdds {
		return eval
	}

	eval.Edge = Edge(marketOdds, eval.FairOdds)
	eval.IsValue = eval.Edge > e.minEdge
	return eval
}

// EvaluateTable prices every entry in registry order
func (e *Evaluator) EvaluateTable(table *markets.Table, book models.MarketOdds) ([]Evaluation, error) {
	if err := book.Validate(); err != nil {
		return nil, fmt.Errorf("match %s: %w", table.MatchID, err)
	}
	entries := table.Entries()
	evals := make([]Evaluation, 0, len(entries))
	for _, mp := range entries {
		price, ok := book.Get(mp.Key)
		evals = append(evals, e.Evaluate(mp, price, ok))
	}
	return evals, nil
}

// ValueBets returns every priced entry whose edge clears the threshold,
// highest edge first
func (e *Evaluator) ValueBets(table *markets.Table, book models.MarketOdds) ([]models.ValueBet, error) {
	evals, err := e.EvaluateTable(table, book)
	if err != nil {
		return nil, err
	}

	var bets []models.ValueBet
	for _, eval := range evals {
		if !eval.IsValue {
			continue
		}
		bets = append(bets, models.ValueBet{
			Key:        eval.Key,
			Edge:       eval.Edge,
			FairOdds:   eval.FairOdds,
			MarketOdds: eval.MarketOdds,
		})
	}
	sort.SliceStable(bets, func(i, j int) bool {
		return bets[i].Edge > bets[j].Edge
	})
	return bets, nil
}

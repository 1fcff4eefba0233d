package odds

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/clever-tickets/internal/goalmodel"
	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/models"
)

func sampleTable(t *testing.T) *markets.Table {
	t.Helper()
	outcome := models.EnsembleOutcome{HomeWin: 0.55, Draw: 0.25, AwayWin: 0.20, Confidence: 70, ConsensusStrength: 60}
	table, err := markets.NewEngine(goalmodel.DefaultCalibration()).Derive("match_1", outcome)
	require.NoError(t, err)
	return table
}

func newEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(0)
	require.NoError(t, err)
	return e
}

func TestFairOdds(t *testing.T) {
	fair, ok := FairOdds(0.55)
	assert.True(t, ok)
	assert.InDelta(t, 1.8181818, fair, 1e-6)

	fair, ok = FairOdds(0)
	assert.False(t, ok)
	assert.Equal(t, models.NoFairOdds, fair)
}

func TestEvaluateHomeWinValue(t *testing.T) {
	e := newEvaluator(t)
	eval := e.Evaluate(models.NewMarketProbability(models.KeyHomeWin, 0.55), 2.10, true)

	assert.True(t, eval.HasFairOdds)
	assert.InDelta(t, 1.8181818, eval.FairOdds, 1e-6)
	assert.InDelta(t, 0.155, eval.Edge, 1e-9)
	assert.True(t, eval.IsValue)
}

func TestEvaluateEdgeSign(t *testing.T) {
	e := newEvaluator(t)
	mp := models.NewMarketProbability(models.KeyDraw, 0.25)

	tests := []struct {
		name    string
		odds    float64
		isValue bool
	}{
		{"above fair", 4.2, true},
		{"exactly fair", 4.0, false},
		{"below fair", 3.6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := e.Evaluate(mp, tt.odds, true)
			assert.Equal(t, tt.isValue, eval.IsValue)
			assert.Equal(t, tt.odds > eval.FairOdds, eval.Edge > 0)
		})
	}
}

func TestEvaluateWithoutPrices(t *testing.T) {
	e := newEvaluator(t)

	eval := e.Evaluate(models.NewMarketProbability(models.KeyHomeWin, 0.55), 0, false)
	assert.False(t, eval.IsValue)
	assert.Zero(t, eval.Edge)

	eval = e.Evaluate(models.NewMarketProbability(models.KeyHomeWin, 0), 3.0, true)
	assert.False(t, eval.HasFairOdds)
	assert.False(t, eval.IsValue)
}

func TestMinEdgeThreshold(t *testing.T) {
	e, err := NewEvaluator(0.2)
	require.NoError(t, err)
	eval := e.Evaluate(models.NewMarketProbability(models.KeyHomeWin, 0.55), 2.10, true)
	assert.False(t, eval.IsValue)

	_, err = NewEvaluator(-0.1)
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
	_, err = NewEvaluator(math.NaN())
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestValueBets(t *testing.T) {
	table := sampleTable(t)
	book := models.MarketOdds{
		models.KeyHomeWin:  2.10,
		models.KeyDraw:     3.40,
		models.KeyAwayWin:  4.50,
		models.KeyBTTSYes:  5.50,
		models.OverKey(2):  3.00,
		models.UnderKey(2): 1.20,
	}

	bets, err := newEvaluator(t).ValueBets(table, book)
	require.NoError(t, err)

	for _, bet := range bets {
		assert.Greater(t, bet.MarketOdds, bet.FairOdds)
		assert.Greater(t, bet.Edge, 0.0)
	}
	for i := 1; i < len(bets); i++ {
		assert.GreaterOrEqual(t, bets[i-1].Edge, bets[i].Edge)
	}

	keys := map[models.MarketKey]bool{}
	for _, bet := range bets {
		keys[bet.Key] = true
	}
	assert.True(t, keys[models.KeyHomeWin])
	assert.True(t, keys[models.KeyBTTSYes])
	assert.False(t, keys[models.KeyDraw])
	assert.False(t, keys[models.KeyAwayWin])
	assert.False(t, keys[models.UnderKey(2)])
}

func TestValueBetsRejectsBadOdds(t *testing.T) {
	_, err := newEvaluator(t).ValueBets(sampleTable(t), models.MarketOdds{models.KeyHomeWin: 0.9})
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestValueBetsDeterministic(t *testing.T) {
	table := sampleTable(t)
	book := models.MarketOdds{models.KeyHomeWin: 2.1, models.KeyBTTSYes: 5.5, models.KeyGoalsOdd: 2.4}
	e := newEvaluator(t)

	first, err := e.ValueBets(table, book)
	require.NoError(t, err)
	second, err := e.ValueBets(table, book)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

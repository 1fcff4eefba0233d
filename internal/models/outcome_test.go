package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsembleOutcomeValidate(t *testing.T) {
	tests := []struct {
		name      string
		outcome   EnsembleOutcome
		expectErr bool
	}{
		{
			name:    "valid outcome",
			outcome: EnsembleOutcome{HomeWin: 0.55, Draw: 0.25, AwayWin: 0.20, Confidence: 70, ConsensusStrength: 60},
		},
		{
			name:    "sum within tolerance",
			outcome: EnsembleOutcome{HomeWin: 0.3335, Draw: 0.3335, AwayWin: 0.3335, Confidence: 50},
		},
		{
			name:      "negative probability",
			outcome:   EnsembleOutcome{HomeWin: -0.1, Draw: 0.6, AwayWin: 0.5},
			expectErr: true,
		},
		{
			name:      "probability above one",
			outcome:   EnsembleOutcome{HomeWin: 1.2, Draw: 0, AwayWin: 0},
			expectErr: true,
		},
		{
			name:      "NaN probability",
			outcome:   EnsembleOutcome{HomeWin: math.NaN(), Draw: 0.5, AwayWin: 0.5},
			expectErr: true,
		},
		{
			name:      "does not sum to one",
			outcome:   EnsembleOutcome{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.3, Confidence: 50},
			expectErr: true,
		},
		{
			name:      "confidence above 100",
			outcome:   EnsembleOutcome{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2, Confidence: 120},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Validate()
			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				var validationErr *ValidationError
				assert.True(t, errors.As(err, &validationErr))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnsembleOutcomePredicted(t *testing.T) {
	tests := []struct {
		name     string
		outcome  EnsembleOutcome
		expected Outcome
	}{
		{"home favourite", EnsembleOutcome{HomeWin: 0.55, Draw: 0.25, AwayWin: 0.20}, OutcomeHomeWin},
		{"away favourite", EnsembleOutcome{HomeWin: 0.2, Draw: 0.3, AwayWin: 0.5}, OutcomeAwayWin},
		{"draw favourite", EnsembleOutcome{HomeWin: 0.3, Draw: 0.4, AwayWin: 0.3}, OutcomeDraw},
		{"home wins tie with draw", EnsembleOutcome{HomeWin: 0.4, Draw: 0.4, AwayWin: 0.2}, OutcomeHomeWin},
		{"home wins tie with away", EnsembleOutcome{HomeWin: 0.4, Draw: 0.2, AwayWin: 0.4}, OutcomeHomeWin},
		{"draw needs strict lead over away", EnsembleOutcome{HomeWin: 0.2, Draw: 0.4, AwayWin: 0.4}, OutcomeAwayWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.outcome.Predicted())
		})
	}
}

func TestEnsembleOutcomeProbability(t *testing.T) {
	o := EnsembleOutcome{HomeWin: 0.5, Draw: 0.3, AwayWin: 0.2, Confidence: 80}
	assert.Equal(t, 0.5, o.Probability(OutcomeHomeWin))
	assert.Equal(t, 0.3, o.Probability(OutcomeDraw))
	assert.Equal(t, 0.2, o.Probability(OutcomeAwayWin))
	assert.Equal(t, 0.0, o.Probability(Outcome("UNKNOWN")))
	assert.InDelta(t, 0.8, o.Reliability(), 1e-12)
}

package odds

import (
	"math"

	"github.com/yourusername/clever-tickets/internal/models"
)

// OddsBand is the recommended price range for a prediction
type OddsBand struct {
	Min float64 `json:"min_odd"`
	Max float64 `json:"max_odd"`
}

// RecommendedBand narrows and lowers the band as consensus strength grows
func RecommendedBand(consensusStrength float64) (OddsBand, error) {
	if math.IsNaN(consensusStrength) || consensusStrength < 0 || consensusStrength > 100 {
		return OddsBand{}, models.NewValidationError("consensus_strength", consensusStrength, "must be within [0,100]")
	}
	c := consensusStrength / 100
	return OddsBand{
		Min: 1.4 + c*0.6,
		Max: 4.0 - c*1.5,
	}, nil
}

// Contains reports whether odds fall inside the band
func (b OddsBand) Contains(odds float64) bool {
	return odds >= b.Min && odds <= b.Max
}

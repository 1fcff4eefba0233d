package goalmodel

import "github.com/yourusername/clever-tickets/internal/models"

// ScoreMatrix is the joint distribution of independent home and away goal counts,
// enumerated per side below a goal cap
type ScoreMatrix struct {
	Cap   int
	cells [][]float64
}

// NewScoreMatrix builds Poisson(λ_home) × Poisson(λ_away) up to limit-1 goals per side
func NewScoreMatrix(gm models.GoalModel, limit int) ScoreMatrix {
	home := make([]float64, limit)
	away := make([]float64, limit)
	for k := 0; k < limit; k++ {
		home[k] = PMF(k, gm.LambdaHome)
		away[k] = PMF(k, gm.LambdaAway)
	}

	cells := make([][]float64, limit)
	for h := 0; h < limit; h++ {
		cells[h] = make([]float64, limit)
		for a := 0; a < limit; a++ {
			cells[h][a] = home[h] * away[a]
		}
	}
	return ScoreMatrix{Cap: limit, cells: cells}
}

// Probability returns P(home = h, away = a) for scorelines inside the cap
func (m ScoreMatrix) Probability(home, away int) float64 {
	if home < 0 || away < 0 || home >= m.Cap || away >= m.Cap {
		return 0
	}
	return m.cells[home][away]
}

// Covered returns the probability mass of all enumerated scorelines
func (m ScoreMatrix) Covered() float64 {
	total := 0.0
	for h := 0; h < m.Cap; h++ {
		for a := 0; a < m.Cap; a++ {
			total += m.cells[h][a]
		}
	}
	return total
}

// Other returns the mass of scorelines with either side at or above the cap
func (m ScoreMatrix) Other() float64 {
	rest := 1 - m.Covered()
	if rest < 0 {
		return 0
	}
	return rest
}

package markets

import (
	"github.com/yourusername/clever-tickets/internal/models"
)

// Table is the complete set of fair market probabilities for one match
type Table struct {
	MatchID         string                                        `json:"match_id"`
	Outcome         models.EnsembleOutcome                        `json:"outcome"`
	GoalModel       models.GoalModel                              `json:"goal_model"`
	Predicted       models.Outcome                                `json:"predicted"`
	AsianLine       float64                                       `json:"asian_line"`
	AsianSide       models.Outcome                                `json:"asian_side"`
	ExpectedCorners float64                                       `json:"expected_corners"`
	ExpectedCards   float64                                       `json:"expected_cards"`
	Probabilities   map[models.MarketKey]models.MarketProbability `json:"markets"`
}

func newTable(matchID string, outcome models.EnsembleOutcome, gm models.GoalModel) *Table {
	return &Table{
		MatchID:       matchID,
		Outcome:       outcome,
		GoalModel:     gm,
		Predicted:     outcome.Predicted(),
		Probabilities: make(map[models.MarketKey]models.MarketProbability, len(models.Keys())),
	}
}

// Get returns the probability entry for a market key
func (t *Table) Get(key models.MarketKey) (models.MarketProbability, bool) {
	mp, ok := t.Probabilities[key]
	return mp, ok
}

// Probability returns the probability of a key, zero when absent
func (t *Table) Probability(key models.MarketKey) float64 {
	return t.Probabilities[key].Probability
}

// Entries returns all entries in registry order
func (t *Table) Entries() []models.MarketProbability {
	entries := make([]models.MarketProbability, 0, len(t.Probabilities))
	for _, key := range models.Keys() {
		if mp, ok := t.Probabilities[key]; ok {
			entries = append(entries, mp)
		}
	}
	return entries
}

// Market returns the entries of one market in registry order
func (t *Table) Market(market models.Market) []models.MarketProbability {
	var entries []models.MarketProbability
	for _, mp := range t.Entries() {
		if models.MarketOf(mp.Key) == market {
			entries = append(entries, mp)
		}
	}
	return entries
}

// CornersSignal returns P(over 9.5 corners)
func (t *Table) CornersSignal() float64 {
	return t.Probability(models.CornersOverKey(PrimaryCornersLine))
}

package strategy

import (
	"math"
	"sort"

	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/models"
	"github.com/yourusername/clever-tickets/internal/odds"
)

// MatchMarkets is a derived market table with the bookmaker prices available for it
type MatchMarkets struct {
	Table *markets.Table
	Odds  models.MarketOdds
}

// Selector turns market tables into ranked candidate selections
type Selector struct {
	useOddsBand bool
}

// SelectorOption configures a Selector
type SelectorOption func(*Selector)

// WithOddsBand drops candidates priced outside the consensus-derived recommended band
func WithOddsBand() SelectorOption {
	return func(s *Selector) {
		s.useOddsBand = true
	}
}

// NewSelector creates a selector
func NewSelector(opts ...SelectorOption) *Selector {
	s := &Selector{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSelection builds the selection for one table entry. Bookmaker odds are used
// when present, otherwise the fair price. Confidence never exceeds the model's.
func NewSelection(table *markets.Table, mp models.MarketProbability, book models.MarketOdds) (models.Selection, bool) {
	if !mp.HasFairOdds() {
		return models.Selection{}, false
	}
	def, err := models.Lookup(mp.Key)
	if err != nil {
		return models.Selection{}, false
	}

	sel := models.Selection{
		MatchID:     table.MatchID,
		Key:         mp.Key,
		Market:      def.Market,
		Label:       def.Label,
		Probability: mp.Probability,
		Odds:        mp.FairOdds,
		Confidence:  math.Min(mp.Probability, table.Outcome.Reliability()),
		FairOdds:    mp.FairOdds,
	}
	if price, ok := book.Get(mp.Key); ok {
		sel.Odds = price
		sel.MarketPriced = true
		sel.Edge = odds.Edge(price, mp.FairOdds)
	}
	return sel, true
}

// Candidates returns one selection per priced market outcome of every match
func (s *Selector) Candidates(matches []MatchMarkets) ([]models.Selection, error) {
	var candidates []models.Selection
	for _, match := range matches {
		if err := match.Odds.Validate(); err != nil {
			return nil, err
		}

		var band odds.OddsBand
		if s.useOddsBand {
			b, err := odds.RecommendedBand(match.Table.Outcome.ConsensusStrength)
			if err != nil {
				return nil, err
			}
			band = b
		}

		for _, mp := range match.Table.Entries() {
			sel, ok := NewSelection(match.Table, mp, match.Odds)
			if !ok {
				continue
			}
			if s.useOddsBand && !band.Contains(sel.Odds) {
				continue
			}
			candidates = append(candidates, sel)
		}
	}
	return candidates, nil
}

// Select ranks the candidates of every match and keeps at most MaxSelections
func (s *Selector) Select(strat BettingStrategy, matches []MatchMarkets) ([]models.Selection, error) {
	candidates, err := s.Candidates(matches)
	if err != nil {
		return nil, err
	}
	return SelectFrom(strat, candidates)
}

// SelectFrom filters candidates by the strategy thresholds, ranks them and
// caps the result at MaxSelections
func SelectFrom(strat BettingStrategy, candidates []models.Selection) ([]models.Selection, error) {
	eligible := Rank(strat, candidates)
	if len(eligible) == 0 {
		return nil, &models.NoEligibleSelectionsError{
			Strategy:      strat.Name,
			MinConfidence: strat.MinConfidence,
			MaxOdds:       strat.MaxOdds,
			Considered:    len(candidates),
		}
	}
	if strat.MaxSelections > 0 && len(eligible) > strat.MaxSelections {
		eligible = eligible[:strat.MaxSelections]
	}
	return eligible, nil
}

// Rank returns the accepted candidates ordered by preferred market, then by
// descending probability*confidence
func Rank(strat BettingStrategy, candidates []models.Selection) []models.Selection {
	eligible := make([]models.Selection, 0, len(candidates))
	for _, c := range candidates {
		if strat.Accepts(c) {
			eligible = append(eligible, c)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		ra, rb := strat.PreferenceRank(a.Market), strat.PreferenceRank(b.Market)
		if ra != rb {
			return ra < rb
		}
		if sa, sb := a.Score(), b.Score(); sa != sb {
			return sa > sb
		}
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		return a.Key < b.Key
	})
	return eligible
}

package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/models"
	"github.com/yourusername/clever-tickets/internal/odds"
)

// MatchInput is one match as supplied by the caller: the model output plus any bookmaker prices
type MatchInput struct {
	MatchID  string                 `json:"match_id"`
	HomeTeam string                 `json:"home_team,omitempty"`
	AwayTeam string                 `json:"away_team,omitempty"`
	Outcome  models.EnsembleOutcome `json:"outcome"`
	Odds     models.MarketOdds      `json:"odds,omitempty"`
}

// Validate checks the match id, the outcome and the odds
func (m MatchInput) Validate() error {
	if strings.TrimSpace(m.MatchID) == "" {
		return fmt.Errorf("%w: match_id is required", models.ErrInvalidInput)
	}
	if err := m.Outcome.Validate(); err != nil {
		return fmt.Errorf("match %s: %w", m.MatchID, err)
	}
	if err := m.Odds.Validate(); err != nil {
		return fmt.Errorf("match %s: %w", m.MatchID, err)
	}
	return nil
}

// MatchAnalysis is the derived view of one match
type MatchAnalysis struct {
	MatchID   string              `json:"match_id"`
	HomeTeam  string              `json:"home_team,omitempty"`
	AwayTeam  string              `json:"away_team,omitempty"`
	Table     *markets.Table      `json:"table"`
	ValueBets []models.ValueBet   `json:"value_bets"`
	OddsBand  odds.OddsBand       `json:"odds_band"`
	Margins   []odds.MarketMargin `json:"margins,omitempty"`
	Odds      models.MarketOdds   `json:"-"`
	CacheHit  bool                `json:"cache_hit"`
}

func checkDuplicates(inputs []MatchInput) error {
	seen := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.MatchID]; dup {
			return fmt.Errorf("%w: duplicate match_id %q", models.ErrInvalidInput, in.MatchID)
		}
		seen[in.MatchID] = struct{}{}
	}
	return nil
}

package models

// Selection is one chosen outcome of one market for one match
type Selection struct {
	MatchID     string    `json:"match_id"`
	Key         MarketKey `json:"market_key"`
	Market      Market    `json:"market"`
	Label       string    `json:"outcome_label"`
	Probability float64   `json:"probability"`
	Odds        float64   `json:"odds"`
	Confidence  float64   `json:"confidence"`
	FairOdds    float64   `json:"fair_odds"`
	// MarketPriced is true when Odds came from a bookmaker rather than the fair price
	MarketPriced bool    `json:"market_priced"`
	Edge         float64 `json:"edge,omitempty"`
}

// Score is the ranking weight used when preferred markets do not decide the order
func (s Selection) Score() float64 {
	return s.Probability * s.Confidence
}

// HasValue reports whether the selection is priced above its fair odds
func (s Selection) HasValue() bool {
	return s.MarketPriced && s.Edge > 0
}

// SameLeg reports whether two selections are the same outcome of the same match
func (s Selection) SameLeg(other Selection) bool {
	return s.MatchID == other.MatchID && s.Key == other.Key
}

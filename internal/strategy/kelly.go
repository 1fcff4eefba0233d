package strategy

// KellyFraction returns the full Kelly fraction of bankroll, max(0, (p*odds - 1) / (odds - 1))
func KellyFraction(probability, odds float64) float64 {
	if probability <= 0 || odds <= 1 {
		return 0
	}
	kelly := (probability*odds - 1) / (odds - 1)
	if kelly <= 0 {
		return 0
	}
	return kelly
}

// ExpectedValue calculates expected profit for a stake
func ExpectedValue(probability, odds, stake float64) float64 {
	if probability <= 0 || odds <= 1 || stake <= 0 {
		return 0
	}
	winProfit := (odds - 1.0) * stake
	return probability*winProfit - (1.0-probability)*stake
}

package odds

import (
	"github.com/yourusername/clever-tickets/internal/markets"
	"github.com/yourusername/clever-tickets/internal/models"
)

// ImpliedProbability returns 1/odds for decimal odds above evens
func ImpliedProbability(decimalOdds float64) float64 {
	if decimalOdds <= 1 {
		return 0
	}
	return 1 / decimalOdds
}

// Overround returns the summed implied probability minus one
func Overround(prices ...float64) float64 {
	total := 0.0
	for _, price := range prices {
		total += ImpliedProbability(price)
	}
	return total - 1
}

// RemoveVig converts a complete set of decimal odds into fair probabilities
// by stripping the bookmaker margin proportionally
func RemoveVig(prices ...float64) []float64 {
	raw := make([]float64, len(prices))
	total := 0.0
	for i, price := range prices {
		raw[i] = ImpliedProbability(price)
		total += raw[i]
	}
	if total <= 0 {
		return raw
	}
	for i := range raw {
		raw[i] /= total
	}
	return raw
}

// MarketMargin is the bookmaker margin and no-vig probabilities for one fully priced market
type MarketMargin struct {
	Market         models.Market                `json:"market"`
	Overround      float64                      `json:"overround"`
	NoVig          map[models.MarketKey]float64 `json:"no_vig"`
	ModelMinusBook map[models.MarketKey]float64 `json:"model_minus_book"`
}

// Margins reports every exclusive market whose outcomes are all priced by the book
func Margins(table *markets.Table, book models.MarketOdds) []MarketMargin {
	byMarket := make(map[models.Market][]models.MarketKey)
	var order []models.Market
	for _, key := range models.Keys() {
		def, _ := models.Lookup(key)
		if !def.Exclusive {
			continue
		}
		if _, seen := byMarket[def.Market]; !seen {
			order = append(order, def.Market)
		}
		byMarket[def.Market] = append(byMarket[def.Market], key)
	}

	var margins []MarketMargin
	for _, market := range order {
		keys := byMarket[market]
		prices := make([]float64, 0, len(keys))
		for _, key := range keys {
			price, ok := book.Get(key)
			if !ok {
				break
			}
			prices = append(prices, price)
		}
		if len(prices) != len(keys) {
			continue
		}

		fair := RemoveVig(prices...)
		margin := MarketMargin{
			Market:         market,
			Overround:      Overround(prices...),
			NoVig:          make(map[models.MarketKey]float64, len(keys)),
			ModelMinusBook: make(map[models.MarketKey]float64, len(keys)),
		}
		for i, key := range keys {
			margin.NoVig[key] = fair[i]
			margin.ModelMinusBook[key] = table.Probability(key) - fair[i]
		}
		margins = append(margins, margin)
	}
	return margins
}

package markets

import (
	"math"

	"github.com/yourusername/clever-tickets/internal/goalmodel"
	"github.com/yourusername/clever-tickets/internal/models"
)

// PrimaryCornersLine is the over threshold (9.5) used as the headline corners signal
const PrimaryCornersLine = 9

func deriveProps(b *builder, o models.EnsembleOutcome, gm models.GoalModel, cal goalmodel.Calibration) {
	corners := ExpectedCorners(gm, cal)
	b.table.ExpectedCorners = corners
	for _, n := range models.CornerLines {
		b.set(models.CornersOverKey(n), goalmodel.OverProbability(n, corners))
		b.set(models.CornersUnderKey(n), goalmodel.UnderProbability(n, corners))
	}

	cards := ExpectedCards(o, cal)
	b.table.ExpectedCards = cards
	for _, n := range models.CardLines {
		b.set(models.CardsOverKey(n), goalmodel.OverProbability(n, cards))
		b.set(models.CardsUnderKey(n), goalmodel.UnderProbability(n, cards))
	}
}

// ExpectedCorners scales total expected goals, rounded to the nearest 0.1
func ExpectedCorners(gm models.GoalModel, cal goalmodel.Calibration) float64 {
	return roundTenth(gm.TotalXG() * cal.CornersFactor)
}

// ExpectedCards grows as the match gets closer to even
func ExpectedCards(o models.EnsembleOutcome, cal goalmodel.Calibration) float64 {
	closeness := 1 - math.Abs(o.HomeWin-o.AwayWin)
	return roundTenth(cal.CardsBase + cal.CardsTension*closeness)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

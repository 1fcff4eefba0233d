package markets

import "github.com/yourusername/clever-tickets/internal/models"

// Asian handicap band: a side is favoured once the strength gap exceeds this
const handicapBand = 0.2

func deriveResult(b *builder, o models.EnsembleOutcome) {
	b.set(models.KeyHomeWin, o.HomeWin)
	b.set(models.KeyDraw, o.Draw)
	b.set(models.KeyAwayWin, o.AwayWin)

	b.set(models.KeyDoubleChance1X, o.HomeWin+o.Draw)
	b.set(models.KeyDoubleChance12, o.HomeWin+o.AwayWin)
	b.set(models.KeyDoubleChanceX2, o.Draw+o.AwayWin)

	line := HandicapLine(o)
	b.table.AsianLine = line
	b.table.AsianSide = HandicapSide(o)

	switch {
	case line < 0:
		// home -0.5 must win outright
		b.set(models.KeyAsianHandicapHome, o.HomeWin)
		b.set(models.KeyAsianHandicapAway, o.Draw+o.AwayWin)
	case line > 0:
		b.set(models.KeyAsianHandicapHome, o.HomeWin+o.Draw)
		b.set(models.KeyAsianHandicapAway, o.AwayWin)
	default:
		// level line: draws are void, so settle on the decided results only
		decided := o.HomeWin + o.AwayWin
		if decided <= 0 {
			b.set(models.KeyAsianHandicapHome, 0.5)
			b.set(models.KeyAsianHandicapAway, 0.5)
			return
		}
		b.set(models.KeyAsianHandicapHome, o.HomeWin/decided)
		b.set(models.KeyAsianHandicapAway, o.AwayWin/decided)
	}
}

// HandicapLine returns the home handicap chosen from the strength difference
func HandicapLine(o models.EnsembleOutcome) float64 {
	d := o.HomeWin - o.AwayWin
	switch {
	case d > handicapBand:
		return -0.5
	case d < -handicapBand:
		return 0.5
	default:
		return 0
	}
}

// HandicapSide returns the side predicted to cover
func HandicapSide(o models.EnsembleOutcome) models.Outcome {
	if o.AwayWin > o.HomeWin {
		return models.OutcomeAwayWin
	}
	return models.OutcomeHomeWin
}

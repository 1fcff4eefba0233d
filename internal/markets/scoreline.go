package markets

import (
	"math"

	"github.com/yourusername/clever-tickets/internal/goalmodel"
	"github.com/yourusername/clever-tickets/internal/models"
)

func deriveScorelines(b *builder, gm models.GoalModel) {
	homeScores := goalmodel.ScoresProbability(gm.LambdaHome)
	awayScores := goalmodel.ScoresProbability(gm.LambdaAway)
	btts := homeScores * awayScores
	b.set(models.KeyBTTSYes, btts)
	b.set(models.KeyBTTSNo, 1-btts)

	// each side keeps a clean sheet when the other side fails to score
	b.set(models.KeyCleanSheetHomeYes, 1-awayScores)
	b.set(models.KeyCleanSheetHomeNo, awayScores)
	b.set(models.KeyCleanSheetAwayYes, 1-homeScores)
	b.set(models.KeyCleanSheetAwayNo, homeScores)

	total := gm.TotalXG()
	noGoal := math.Exp(-total)
	if total <= 0 {
		b.set(models.KeyFirstGoalHome, 0)
		b.set(models.KeyFirstGoalAway, 0)
		b.set(models.KeyFirstGoalNone, 1)
	} else {
		anyGoal := 1 - noGoal
		b.set(models.KeyFirstGoalHome, gm.LambdaHome/total*anyGoal)
		b.set(models.KeyFirstGoalAway, gm.LambdaAway/total*anyGoal)
		b.set(models.KeyFirstGoalNone, noGoal)
	}

	matrix := goalmodel.NewScoreMatrix(gm, models.MaxScorelineGoals)
	for h := 0; h < matrix.Cap; h++ {
		for a := 0; a < matrix.Cap; a++ {
			b.set(models.CorrectScoreKey(h, a), matrix.Probability(h, a))
		}
	}
	b.set(models.KeyCorrectScoreOther, matrix.Other())
}
